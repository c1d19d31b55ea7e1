package cfr

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Store maps information set keys to their Nodes. Nodes are created
// lazily on first visit and never deleted; the Store's lifetime is the
// solver's lifetime. It is not safe for concurrent use, which the solver
// never requires.
type Store struct {
	nodes map[string]*Node
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{nodes: make(map[string]*Node)}
}

// GetOrCreate returns the Node for key, creating it with nActions actions
// on first visit. The same key always yields the same Node pointer for the
// life of the Store: regret and strategy accumulation is stateful and
// depends on referential identity.
//
// It panics if an existing node's action count differs from nActions;
// that means the game's InfoSetKey is not injective in (private
// information, history), which is a programmer error.
func (s *Store) GetOrCreate(key string, nActions int) *Node {
	node, ok := s.nodes[key]
	if !ok {
		node = NewNode(nActions)
		s.nodes[key] = node
	}

	if node.NumActions() != nActions {
		panic(fmt.Errorf("node has n_actions=%v but infoset %q has n_actions=%v",
			node.NumActions(), key, nActions))
	}

	return node
}

// Get returns the Node for key, or an error wrapping ErrUnknownInfoSet if
// the key was never visited.
func (s *Store) Get(key string) (*Node, error) {
	node, ok := s.nodes[key]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownInfoSet, "key %q", key)
	}

	return node, nil
}

// Len returns the number of information sets visited so far.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Keys returns all visited information set keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.nodes))
	for k := range s.nodes {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}
