// Package cfr implements counterfactual regret minimization for small
// two-player, zero-sum, imperfect-information sequential games.
//
// The solver repeatedly walks the full game tree for one realized chance
// outcome per iteration, accumulating counterfactual regret at every
// information set. The reach-weighted time average of the per-iteration
// strategies converges to a Nash equilibrium of the game.
package cfr

// Player indices. All bundled games are two-player.
const (
	Player0 = 0
	Player1 = 1
)

// Action is a single action label. Actions are single bytes so that a
// History is just the concatenation of the actions taken so far.
type Action byte

// History is the immutable public action sequence leading to a game state.
// The empty History is the root of the game.
type History string

// Append returns the history extended by one action. The receiver is
// unchanged.
func (h History) Append(a Action) History {
	return h + History([]byte{byte(a)})
}

// Len returns the number of actions taken so far.
func (h History) Len() int {
	return len(h)
}

// ChanceOutcome is one realized assignment of all private information in
// the game, e.g. the cards dealt to both players or the dice they rolled.
// It is opaque to the solver and only interpreted by the Game that
// produced it.
type ChanceOutcome interface{}

// Game is a pure, stateless description of one specific extensive-form
// game. The solver owns all mutable state; a Game only answers questions
// about histories and outcomes.
type Game interface {
	// CurrentPlayer returns the player to act at h. For terminal
	// histories it returns the player from whose perspective
	// TerminalUtility is expressed.
	CurrentPlayer(h History) int

	// LegalActions returns the ordered actions available at h.
	// The order must be stable: information sets index their regret
	// accumulators by position in this slice.
	LegalActions(h History) []Action

	// IsTerminal reports whether h is a terminal history.
	IsTerminal(h History) bool

	// TerminalUtility returns the payoff at terminal history h under the
	// realized outcome, from the perspective of CurrentPlayer(h).
	// It returns an error wrapping ErrInvalidState if h is not terminal.
	TerminalUtility(deal ChanceOutcome, h History) (float64, error)

	// InfoSetKey returns the identifier of player's information set at h
	// under the realized outcome. Keys must be injective in
	// (player's private information, h): two states share a key iff the
	// acting player cannot distinguish them.
	InfoSetKey(player int, deal ChanceOutcome, h History) string

	// RealizeDeal returns the chance outcome for training iteration iter.
	// prior is the outcome of the previous iteration (nil on the first).
	// Implementations may enumerate outcomes deterministically or sample;
	// across many iterations every outcome must be covered about as
	// densely as the others.
	RealizeDeal(iter int, prior ChanceOutcome) ChanceOutcome

	// ChanceOutcomes enumerates every distinct chance outcome exactly
	// once. Used to compute exact expected values of a strategy profile.
	ChanceOutcomes() []ChanceOutcome
}
