// Package kuhn implements Kuhn poker as a cfr.Game.
//
// Both players ante 1 chip and are dealt one card from the deck {J, Q, K}.
// Play alternates starting with player 0; a player may check or bet 1 chip.
// Folding after a bet forfeits the pot; two checks or two bets trigger a
// showdown won by the higher card. The first player's equilibrium value
// is -1/18.
package kuhn

import (
	"github.com/pkg/errors"

	cfr "github.com/luca-miniati/game-theory"
)

// Actions.
const (
	Check cfr.Action = 'c'
	Bet   cfr.Action = 'b'
)

// Card is one of the three cards in the deck.
type Card int

const (
	Jack Card = iota
	Queen
	King
)

var cardStr = [...]string{"J", "Q", "K"}

func (c Card) String() string {
	return cardStr[c]
}

// Deal is one realized deal: the private card of each player.
type Deal [2]Card

// Game implements cfr.Game for Kuhn poker.
type Game struct {
	deals []cfr.ChanceOutcome
}

// NewGame returns a Kuhn poker game over the 3-card deck.
func NewGame() *Game {
	var deals []cfr.ChanceOutcome
	for _, c0 := range []Card{Jack, Queen, King} {
		for _, c1 := range []Card{Jack, Queen, King} {
			if c0 == c1 {
				continue // Both players can't be dealt the same card.
			}
			deals = append(deals, Deal{c0, c1})
		}
	}

	return &Game{deals: deals}
}

// CurrentPlayer implements cfr.Game. Play strictly alternates.
func (g *Game) CurrentPlayer(h cfr.History) int {
	return h.Len() % 2
}

// LegalActions implements cfr.Game.
func (g *Game) LegalActions(h cfr.History) []cfr.Action {
	if g.IsTerminal(h) {
		return nil
	}

	return []cfr.Action{Check, Bet}
}

// IsTerminal implements cfr.Game.
func (g *Game) IsTerminal(h cfr.History) bool {
	switch string(h) {
	case "cc", "bb", "bc", "cbc", "cbb":
		return true
	}

	return false
}

// TerminalUtility implements cfr.Game. The payoff is from the perspective
// of the player whose turn it would be at h.
func (g *Game) TerminalUtility(deal cfr.ChanceOutcome, h cfr.History) (float64, error) {
	if !g.IsTerminal(h) {
		return 0, errors.Wrapf(cfr.ErrInvalidState, "history %q is not terminal", h)
	}

	d, ok := deal.(Deal)
	if !ok {
		return 0, errors.Wrapf(cfr.ErrInvalidState, "unexpected chance outcome %T", deal)
	}

	player := g.CurrentPlayer(h)
	cardPlayer := d[player]
	cardOpponent := d[1-player]

	switch string(h) {
	case "bc", "cbc":
		// Opponent folded after our bet.
		return 1.0, nil
	case "cc":
		// Showdown with no bets.
		if cardPlayer > cardOpponent {
			return 1.0, nil
		}
		return -1.0, nil
	default:
		// Showdown with one called bet.
		if cardPlayer > cardOpponent {
			return 2.0, nil
		}
		return -2.0, nil
	}
}

// InfoSetKey implements cfr.Game. The key is the player's private card
// followed by the public betting history, e.g. "Q-cb".
func (g *Game) InfoSetKey(player int, deal cfr.ChanceOutcome, h cfr.History) string {
	d := deal.(Deal)
	return d[player].String() + "-" + string(h)
}

// RealizeDeal implements cfr.Game by cycling deterministically through all
// six deals, so every deal is covered equally densely over a training run.
func (g *Game) RealizeDeal(iter int, prior cfr.ChanceOutcome) cfr.ChanceOutcome {
	return g.deals[iter%len(g.deals)]
}

// ChanceOutcomes implements cfr.Game.
func (g *Game) ChanceOutcomes() []cfr.ChanceOutcome {
	out := make([]cfr.ChanceOutcome, len(g.deals))
	copy(out, g.deals)
	return out
}
