// Package matrixgame applies regret matching to two-player zero-sum games
// in normal form: one simultaneous move per game, payoffs given by a
// matrix. It is the non-recursive sibling of the sequential CFR solver
// and shares its regret-matching node.
package matrixgame

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Game is a two-player zero-sum normal-form game. payoff[i][j] is the row
// player's utility when the row player plays i and the column player
// plays j; the column player's utility is its negation.
type Game struct {
	payoff    [][]float64
	rowLabels []string
	colLabels []string
}

// New returns a Game for the given row-player payoff matrix. The matrix
// must be non-empty and rectangular.
func New(payoff [][]float64) (*Game, error) {
	if len(payoff) == 0 || len(payoff[0]) == 0 {
		return nil, errors.New("matrixgame: empty payoff matrix")
	}

	nCols := len(payoff[0])
	for i, row := range payoff {
		if len(row) != nCols {
			return nil, errors.Errorf("matrixgame: row %d has %d columns, want %d",
				i, len(row), nCols)
		}
	}

	return &Game{
		payoff:    payoff,
		rowLabels: indexLabels(len(payoff)),
		colLabels: indexLabels(nCols),
	}, nil
}

func indexLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// NumActions returns the number of pure strategies available to player
// (0 = row, 1 = column).
func (g *Game) NumActions(player int) int {
	if player == 0 {
		return len(g.payoff)
	}

	return len(g.payoff[0])
}

// ActionLabel returns a display label for the given pure strategy.
func (g *Game) ActionLabel(player, i int) string {
	if player == 0 {
		return g.rowLabels[i]
	}

	return g.colLabels[i]
}

// Utility returns player's payoff when the row player plays a0 against
// the column player's a1.
func (g *Game) Utility(player, a0, a1 int) float64 {
	if player == 0 {
		return g.payoff[a0][a1]
	}

	return -g.payoff[a0][a1]
}

// RockPaperScissors returns the classic 3-action game. Its unique
// equilibrium is uniform for both players.
func RockPaperScissors() *Game {
	g, err := New([][]float64{
		{0, -1, 1}, // rock
		{1, 0, -1}, // paper
		{-1, 1, 0}, // scissors
	})
	if err != nil {
		panic(err)
	}

	g.rowLabels = []string{"rock", "paper", "scissors"}
	g.colLabels = g.rowLabels
	return g
}

// ColonelBlotto returns the Colonel Blotto game in which each commander
// splits soldiers across battlefields; a battlefield is claimed by the
// side that committed more soldiers to it, and the payoff is the number
// of battlefields claimed minus the number lost.
func ColonelBlotto(soldiers, battlefields int) (*Game, error) {
	if soldiers < 1 || battlefields < 1 {
		return nil, errors.Errorf("matrixgame: invalid blotto parameters s=%d n=%d",
			soldiers, battlefields)
	}

	allocations := enumerateAllocations(soldiers, battlefields)
	n := len(allocations)
	payoff := make([][]float64, n)
	labels := make([]string, n)
	for i, alloc := range allocations {
		labels[i] = allocationLabel(alloc)
		payoff[i] = make([]float64, n)
		for j, other := range allocations {
			var u float64
			for k := range alloc {
				if alloc[k] > other[k] {
					u++
				} else if alloc[k] < other[k] {
					u--
				}
			}
			payoff[i][j] = u
		}
	}

	g, err := New(payoff)
	if err != nil {
		return nil, err
	}

	g.rowLabels = labels
	g.colLabels = labels
	return g, nil
}

func enumerateAllocations(soldiers, battlefields int) [][]int {
	var result [][]int
	alloc := make([]int, battlefields)

	var rec func(field, remaining int)
	rec = func(field, remaining int) {
		if field == battlefields-1 {
			alloc[field] = remaining
			result = append(result, append([]int(nil), alloc...))
			return
		}
		for s := 0; s <= remaining; s++ {
			alloc[field] = s
			rec(field+1, remaining-s)
		}
	}

	rec(0, soldiers)
	return result
}

func allocationLabel(alloc []int) string {
	label := ""
	for i, s := range alloc {
		if i > 0 {
			label += "-"
		}
		label += fmt.Sprintf("%d", s)
	}
	return label
}
