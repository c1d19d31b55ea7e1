package matrixgame

import (
	"math/rand"

	"github.com/golang/glog"

	cfr "github.com/luca-miniati/game-theory"
)

// Trainer runs regret-matching self-play for a normal-form Game. Each
// iteration samples one pure strategy per player from their current
// regret-matched strategies and accumulates, for every alternative
// action, the regret of not having played it against the opponent's
// realized choice.
type Trainer struct {
	game  *Game
	rng   *rand.Rand
	nodes [2]*cfr.Node
}

// NewTrainer returns a Trainer for game. seed fixes the action sampling
// sequence, so training is reproducible.
func NewTrainer(game *Game, seed int64) *Trainer {
	return &Trainer{
		game: game,
		rng:  rand.New(rand.NewSource(seed)),
		nodes: [2]*cfr.Node{
			cfr.NewNode(game.NumActions(0)),
			cfr.NewNode(game.NumActions(1)),
		},
	}
}

// Train runs n self-play iterations.
func (t *Trainer) Train(n int) {
	for i := 1; i <= n; i++ {
		// In a one-shot game the opponent always "reaches" the single
		// decision point, so strategy sums accumulate with weight 1.
		s0 := t.nodes[0].CurrentStrategy(1.0)
		s1 := t.nodes[1].CurrentStrategy(1.0)

		a0 := sample(t.rng, s0)
		a1 := sample(t.rng, s1)

		realized0 := t.game.Utility(0, a0, a1)
		for a := 0; a < t.game.NumActions(0); a++ {
			t.nodes[0].AddRegret(a, t.game.Utility(0, a, a1)-realized0)
		}

		realized1 := t.game.Utility(1, a0, a1)
		for b := 0; b < t.game.NumActions(1); b++ {
			t.nodes[1].AddRegret(b, t.game.Utility(1, a0, b)-realized1)
		}

		if n >= 10 && i%(n/10) == 0 {
			glog.V(1).Infof("After %d iterations, row weights: %v",
				i, t.nodes[0].AverageStrategy())
		}
	}
}

// AverageStrategy returns the time-averaged strategy for player (0 = row,
// 1 = column), the quantity that converges to equilibrium.
func (t *Trainer) AverageStrategy(player int) []float64 {
	return t.nodes[player].AverageStrategy()
}

func sample(rng *rand.Rand, dist []float64) int {
	x := rng.Float64()
	var cum float64
	for i, p := range dist {
		cum += p
		if cum > x {
			return i
		}
	}

	return len(dist) - 1
}
