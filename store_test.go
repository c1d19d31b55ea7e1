package cfr

import (
	"errors"
	"reflect"
	"testing"
)

func TestStore_ReferentialIdentity(t *testing.T) {
	store := NewStore()

	first := store.GetOrCreate("a", 2)
	second := store.GetOrCreate("a", 2)
	if first != second {
		t.Error("expected the same node instance for the same key")
	}

	other := store.GetOrCreate("b", 3)
	if other == first {
		t.Error("expected distinct nodes for distinct keys")
	}

	if store.Len() != 2 {
		t.Errorf("expected 2 nodes, got %d", store.Len())
	}
}

func TestStore_ActionCountMismatchPanics(t *testing.T) {
	store := NewStore()
	store.GetOrCreate("a", 2)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on action count mismatch")
		}
	}()
	store.GetOrCreate("a", 3)
}

func TestStore_GetUnknownKey(t *testing.T) {
	store := NewStore()

	_, err := store.Get("missing")
	if !errors.Is(err, ErrUnknownInfoSet) {
		t.Errorf("expected ErrUnknownInfoSet, got %v", err)
	}
}

func TestStore_KeysSorted(t *testing.T) {
	store := NewStore()
	for _, k := range []string{"c", "a", "b"} {
		store.GetOrCreate(k, 1)
	}

	if keys := store.Keys(); !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
		t.Errorf("expected sorted keys, got %v", keys)
	}
}
