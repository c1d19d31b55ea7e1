package cfr

import (
	"github.com/golang/glog"
)

// Solver computes an approximate Nash equilibrium for a Game by
// counterfactual regret minimization with full tree traversal. One
// training iteration realizes a single chance outcome, walks every
// reachable history under it depth-first, and updates regrets at every
// information set along the way.
//
// A Solver is not safe for concurrent use: every iteration reads and
// mutates node state that the next iteration depends on.
type Solver struct {
	game      Game
	store     *Store
	slicePool *floatSlicePool

	iter int
	deal ChanceOutcome
}

// New returns a Solver for game with an empty information set store.
func New(game Game) *Solver {
	return &Solver{
		game:      game,
		store:     NewStore(),
		slicePool: &floatSlicePool{},
	}
}

// Train runs n training iterations and returns the mean root utility over
// the realized outcomes, from the first player's perspective. Train may be
// called repeatedly; regret and strategy accumulation continues where the
// previous call left off.
func (s *Solver) Train(n int) float64 {
	var total float64
	for i := 0; i < n; i++ {
		s.deal = s.game.RealizeDeal(s.iter, s.deal)
		total += s.cfr(s.deal, History(""), 1.0, 1.0)
		s.iter++

		if s.iter%10000 == 0 {
			glog.V(1).Infof("[iter=%d] %d infosets, running value %.4f",
				s.iter, s.store.Len(), total/float64(i+1))
		}
	}

	return total / float64(n)
}

// AverageStrategyFor returns the time-averaged strategy for the
// information set identified by key. It returns an error wrapping
// ErrUnknownInfoSet if the key was never visited during training.
func (s *Solver) AverageStrategyFor(key string) ([]float64, error) {
	node, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}

	return node.AverageStrategy(), nil
}

// ExpectedValue returns the exact expected utility of the average strategy
// profile for the first player, enumerating every chance outcome exactly
// once. It does not mutate the store: information sets never reached
// during training resolve to the uniform strategy without being created.
func (s *Solver) ExpectedValue() float64 {
	outcomes := s.game.ChanceOutcomes()
	var ev float64
	for _, deal := range outcomes {
		ev += s.averageUtility(deal, History(""))
	}

	return ev / float64(len(outcomes))
}

// NumInfoSets returns the number of information sets visited so far.
func (s *Solver) NumInfoSets() int {
	return s.store.Len()
}

// InfoSetKeys returns all visited information set keys in sorted order.
func (s *Solver) InfoSetKeys() []string {
	return s.store.Keys()
}

// cfr returns the counterfactual utility of history h under the realized
// outcome, from the perspective of the player to act at h. reachP0 and
// reachP1 are the probabilities of each player's own choices having led
// here under the current strategy profile.
func (s *Solver) cfr(deal ChanceOutcome, h History, reachP0, reachP1 float64) float64 {
	if s.game.IsTerminal(h) {
		u, err := s.game.TerminalUtility(deal, h)
		if err != nil {
			panic(err) // Game contradicts its own IsTerminal.
		}
		return u
	}

	player := s.game.CurrentPlayer(h)
	actions := s.game.LegalActions(h)
	key := s.game.InfoSetKey(player, deal, h)
	node := s.store.GetOrCreate(key, len(actions))

	// The counterfactual weight is the probability that everyone except
	// the acting player reaches this infoset.
	counterfactualP := reachP1
	if player == Player1 {
		counterfactualP = reachP0
	}

	strategy := node.CurrentStrategy(counterfactualP)
	util := s.slicePool.alloc(len(actions))
	defer s.slicePool.free(util)

	var nodeUtil float64
	for a, action := range actions {
		child := h.Append(action)
		p := strategy[a]

		var childUtil float64
		if player == Player0 {
			childUtil = s.cfr(deal, child, p*reachP0, reachP1)
		} else {
			childUtil = s.cfr(deal, child, reachP0, p*reachP1)
		}
		if s.game.CurrentPlayer(child) != player {
			childUtil = -childUtil // Switch of perspective.
		}

		util[a] = childUtil
		nodeUtil += p * childUtil
	}

	for a := range actions {
		node.AddRegret(a, counterfactualP*(util[a]-nodeUtil))
	}

	return nodeUtil
}

// averageUtility is the strategy-only analogue of cfr: a non-mutating walk
// under the average strategy profile.
func (s *Solver) averageUtility(deal ChanceOutcome, h History) float64 {
	if s.game.IsTerminal(h) {
		u, err := s.game.TerminalUtility(deal, h)
		if err != nil {
			panic(err)
		}
		return u
	}

	player := s.game.CurrentPlayer(h)
	actions := s.game.LegalActions(h)

	strategy := uniformDist(len(actions))
	if node, err := s.store.Get(s.game.InfoSetKey(player, deal, h)); err == nil {
		strategy = node.AverageStrategy()
	}

	var nodeUtil float64
	for a, action := range actions {
		child := h.Append(action)
		childUtil := s.averageUtility(deal, child)
		if s.game.CurrentPlayer(child) != player {
			childUtil = -childUtil
		}

		nodeUtil += strategy[a] * childUtil
	}

	return nodeUtil
}
