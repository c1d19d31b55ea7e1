package cfr

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

type noDeal struct{}

// matchingPennies is the smallest nontrivial imperfect-information game:
// both players pick heads or tails, player 1 without seeing player 0's
// choice. Player 0 wins on a match. The unique equilibrium is uniform for
// both players with game value 0.
type matchingPennies struct{}

func (matchingPennies) CurrentPlayer(h History) int {
	return h.Len() % 2
}

func (matchingPennies) LegalActions(h History) []Action {
	if h.Len() >= 2 {
		return nil
	}

	return []Action{'H', 'T'}
}

func (matchingPennies) IsTerminal(h History) bool {
	return h.Len() == 2
}

func (g matchingPennies) TerminalUtility(deal ChanceOutcome, h History) (float64, error) {
	if !g.IsTerminal(h) {
		return 0, ErrInvalidState
	}

	if h[0] == h[1] {
		return 1.0, nil
	}

	return -1.0, nil
}

func (matchingPennies) InfoSetKey(player int, deal ChanceOutcome, h History) string {
	// Player 1 does not observe player 0's choice, so both of their
	// histories collapse into one information set.
	if player == Player0 {
		return "p0"
	}

	return "p1"
}

func (matchingPennies) RealizeDeal(iter int, prior ChanceOutcome) ChanceOutcome {
	return noDeal{}
}

func (matchingPennies) ChanceOutcomes() []ChanceOutcome {
	return []ChanceOutcome{noDeal{}}
}

// singleAction has exactly one reachable information set with one action.
type singleAction struct{}

func (singleAction) CurrentPlayer(h History) int { return h.Len() % 2 }

func (singleAction) LegalActions(h History) []Action {
	if h.Len() >= 1 {
		return nil
	}

	return []Action{'x'}
}

func (singleAction) IsTerminal(h History) bool { return h.Len() == 1 }

func (g singleAction) TerminalUtility(deal ChanceOutcome, h History) (float64, error) {
	if !g.IsTerminal(h) {
		return 0, ErrInvalidState
	}

	return 0, nil
}

func (singleAction) InfoSetKey(player int, deal ChanceOutcome, h History) string {
	return "only"
}

func (singleAction) RealizeDeal(iter int, prior ChanceOutcome) ChanceOutcome {
	return noDeal{}
}

func (singleAction) ChanceOutcomes() []ChanceOutcome {
	return []ChanceOutcome{noDeal{}}
}

func TestMatchingPennies_Equilibrium(t *testing.T) {
	solver := New(matchingPennies{})
	solver.Train(10000)

	ev := solver.ExpectedValue()
	if math.Abs(ev) > 0.05 {
		t.Errorf("expected game value ~0, got %v", ev)
	}

	for _, key := range []string{"p0", "p1"} {
		strat, err := solver.AverageStrategyFor(key)
		if err != nil {
			t.Fatalf("%v: %v", key, err)
		}

		if len(strat) != 2 {
			t.Fatalf("%v: expected 2 actions, got %d", key, len(strat))
		}

		assertDistribution(t, strat)
		for i, p := range strat {
			if math.Abs(p-0.5) > 0.05 {
				t.Errorf("%v: action %d has probability %v, expected ~0.5", key, i, p)
			}
		}
	}
}

func TestMatchingPennies_InfoSets(t *testing.T) {
	if n := CountInfoSets(matchingPennies{}); n != 2 {
		t.Errorf("expected 2 infosets, got %d", n)
	}

	if n := CountTerminalHistories(matchingPennies{}); n != 4 {
		t.Errorf("expected 4 terminal histories, got %d", n)
	}
}

func TestSingleAction_AverageStrategy(t *testing.T) {
	for _, nIter := range []int{1, 100} {
		solver := New(singleAction{})
		solver.Train(nIter)

		strat, err := solver.AverageStrategyFor("only")
		if err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(strat, []float64{1.0}) {
			t.Errorf("after %d iterations: expected [1.0], got %v", nIter, strat)
		}
	}
}

func TestAverageStrategyFor_UnknownKey(t *testing.T) {
	solver := New(matchingPennies{})
	solver.Train(10)

	_, err := solver.AverageStrategyFor("never-visited")
	if !errors.Is(err, ErrUnknownInfoSet) {
		t.Errorf("expected ErrUnknownInfoSet, got %v", err)
	}
}

func TestExtraction_Idempotent(t *testing.T) {
	solver := New(matchingPennies{})
	solver.Train(100)

	first, err := solver.AverageStrategyFor("p1")
	if err != nil {
		t.Fatal(err)
	}

	second, err := solver.AverageStrategyFor("p1")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %v vs %v", first, second)
	}
}

func TestExpectedValue_DoesNotMutateStore(t *testing.T) {
	solver := New(matchingPennies{})

	// Before any training the store is empty; the extractor must fall
	// back to uniform strategies without creating nodes.
	if ev := solver.ExpectedValue(); ev != 0 {
		t.Errorf("expected uniform-play value 0, got %v", ev)
	}

	if solver.NumInfoSets() != 0 {
		t.Errorf("extraction created %d nodes", solver.NumInfoSets())
	}

	solver.Train(10)
	before := solver.NumInfoSets()
	solver.ExpectedValue()
	if after := solver.NumInfoSets(); after != before {
		t.Errorf("extraction changed store size: %d -> %d", before, after)
	}
}

func assertDistribution(t *testing.T, strat []float64) {
	t.Helper()

	var total float64
	for _, p := range strat {
		if p < 0 {
			t.Errorf("negative probability %v in %v", p, strat)
		}
		total += p
	}

	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %v: %v", total, strat)
	}
}
