package cfr

import (
	"github.com/luca-miniati/game-theory/internal/f64"
)

// Node accumulates regret and strategy mass for a single information set.
// A Node is created the first time its key is reached and owned by the
// Store for the lifetime of the solver. Its action count is fixed at
// creation.
type Node struct {
	regretSum   []float64
	strategy    []float64
	strategySum []float64
}

// NewNode returns a Node for an information set with nActions legal
// actions, with zeroed accumulators and a uniform current strategy.
func NewNode(nActions int) *Node {
	return &Node{
		regretSum:   make([]float64, nActions),
		strategy:    uniformDist(nActions),
		strategySum: make([]float64, nActions),
	}
}

// NumActions returns the number of legal actions at this information set.
func (n *Node) NumActions() int {
	return len(n.regretSum)
}

// CurrentStrategy recomputes the current strategy by regret matching:
// each action's mass is its positive accumulated regret, normalized; if no
// action has positive regret the strategy is uniform.
//
// reachP must be the probability that the opponent (and chance) reach this
// information set on the current iteration. It is folded into the running
// strategy sum, which is the weighting required for the average strategy
// to converge to equilibrium.
//
// The returned slice is owned by the Node and valid until the next call.
func (n *Node) CurrentStrategy(reachP float64) []float64 {
	copy(n.strategy, n.regretSum)
	makePositive(n.strategy)
	total := f64.Sum(n.strategy)
	if total > 0 {
		f64.ScalUnitary(1.0/total, n.strategy)
	} else {
		p := 1.0 / float64(len(n.strategy))
		for i := range n.strategy {
			n.strategy[i] = p
		}
	}

	f64.AxpyUnitary(reachP, n.strategy, n.strategySum)
	return n.strategy
}

// AddRegret accumulates counterfactual regret v for action a. Entries may
// go negative and later recover; nothing is clamped or normalized.
func (n *Node) AddRegret(a int, v float64) {
	n.regretSum[a] += v
}

// AverageStrategy returns the reach-weighted time-averaged strategy, the
// quantity with equilibrium convergence guarantees. If no strategy mass
// has accumulated it is uniform. The returned slice is freshly allocated.
func (n *Node) AverageStrategy() []float64 {
	total := f64.Sum(n.strategySum)
	if total > 0 {
		avg := make([]float64, len(n.strategySum))
		f64.ScalUnitaryTo(avg, 1.0/total, n.strategySum)
		return avg
	}

	return uniformDist(len(n.regretSum))
}

func uniformDist(n int) []float64 {
	result := make([]float64, n)
	f64.AddConst(1.0/float64(n), result)
	return result
}

func makePositive(v []float64) {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0.0
		}
	}
}
