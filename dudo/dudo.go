// Package dudo implements one-die-versus-one-die Dudo (liar's dice) as a
// cfr.Game.
//
// Each player rolls a single six-sided die. Players alternate making
// claims about how many dice of a given rank are showing between them;
// ones are wild and count toward every rank. Every claim must be stronger
// than the previous one, and instead of raising a player may challenge
// ("Dudo"), ending the game. If the challenged claim was an underbid the
// claimant wins the surplus, if exact the claimant wins 1, and if it was
// an overbid the claimant loses the deficit.
package dudo

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	cfr "github.com/luca-miniati/game-theory"
)

const numSides = 6

// Dudo challenges the last claim. It is legal at every history with at
// least one claim.
const Dudo cfr.Action = 'D'

// A claim asserts that at least num dice of the given rank are showing,
// counting ones as wild.
type claim struct {
	num  int
	rank int
}

// claims lists every claim in increasing strength. Strength is
// quantity-major; within a quantity, rank 1 is strongest because ones are
// wild and a rank-1 claim counts only half the faces.
var claims = buildClaims()

func buildClaims() []claim {
	var result []claim
	for num := 1; num <= 2; num++ {
		for _, rank := range []int{2, 3, 4, 5, 6, 1} {
			result = append(result, claim{num: num, rank: rank})
		}
	}

	return result
}

// claimAction maps the ith strongest claim to its action byte.
func claimAction(i int) cfr.Action {
	return cfr.Action('a' + i)
}

func claimIndex(a cfr.Action) int {
	return int(a - 'a')
}

// FormatAction renders an action for display, e.g. "2*5" or "dudo".
func FormatAction(a cfr.Action) string {
	if a == Dudo {
		return "dudo"
	}

	c := claims[claimIndex(a)]
	return fmt.Sprintf("%d*%d", c.num, c.rank)
}

// Deal is one realized roll: the private die of each player.
type Deal [2]int

// Game implements cfr.Game for Dudo.
type Game struct {
	deals []cfr.ChanceOutcome
}

// NewGame returns a Dudo game with one die per player.
func NewGame() *Game {
	var deals []cfr.ChanceOutcome
	for d0 := 1; d0 <= numSides; d0++ {
		for d1 := 1; d1 <= numSides; d1++ {
			deals = append(deals, Deal{d0, d1})
		}
	}

	return &Game{deals: deals}
}

// CurrentPlayer implements cfr.Game. Claims and challenges alternate.
func (g *Game) CurrentPlayer(h cfr.History) int {
	return h.Len() % 2
}

// LegalActions implements cfr.Game. Legal claims strictly raise the last
// claim; the challenge is available once any claim has been made, so a
// node with a live claim has one more action class than the opening node.
func (g *Game) LegalActions(h cfr.History) []cfr.Action {
	if g.IsTerminal(h) {
		return nil
	}

	last := -1
	if h.Len() > 0 {
		last = claimIndex(cfr.Action(h[h.Len()-1]))
	}

	var actions []cfr.Action
	for i := last + 1; i < len(claims); i++ {
		actions = append(actions, claimAction(i))
	}
	if h.Len() > 0 {
		actions = append(actions, Dudo)
	}

	return actions
}

// IsTerminal implements cfr.Game. The game ends only on a challenge.
func (g *Game) IsTerminal(h cfr.History) bool {
	return h.Len() > 0 && cfr.Action(h[h.Len()-1]) == Dudo
}

// TerminalUtility implements cfr.Game. At a terminal history the player
// to act is the challenged claimant, and the payoff is expressed from
// their perspective.
func (g *Game) TerminalUtility(deal cfr.ChanceOutcome, h cfr.History) (float64, error) {
	if !g.IsTerminal(h) {
		return 0, errors.Wrapf(cfr.ErrInvalidState, "history %q is not terminal", h)
	}

	d, ok := deal.(Deal)
	if !ok {
		return 0, errors.Wrapf(cfr.ErrInvalidState, "unexpected chance outcome %T", deal)
	}

	c := claims[claimIndex(cfr.Action(h[h.Len()-2]))]
	count := 0
	for _, die := range d {
		if die == c.rank || die == 1 {
			count++
		}
	}

	diff := count - c.num
	if diff == 0 {
		// The claim was exactly right; the challenger pays 1.
		return 1.0, nil
	}

	return float64(diff), nil
}

// InfoSetKey implements cfr.Game. The key is the player's own die
// followed by the public claim history, e.g. "4-acD".
func (g *Game) InfoSetKey(player int, deal cfr.ChanceOutcome, h cfr.History) string {
	d := deal.(Deal)
	return strconv.Itoa(d[player]) + "-" + string(h)
}

// RealizeDeal implements cfr.Game by cycling deterministically through all
// 36 ordered die pairs.
func (g *Game) RealizeDeal(iter int, prior cfr.ChanceOutcome) cfr.ChanceOutcome {
	return g.deals[iter%len(g.deals)]
}

// ChanceOutcomes implements cfr.Game.
func (g *Game) ChanceOutcomes() []cfr.ChanceOutcome {
	out := make([]cfr.ChanceOutcome, len(g.deals))
	copy(out, g.deals)
	return out
}
