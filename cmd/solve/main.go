// Command solve trains an equilibrium strategy for one of the bundled
// games and reports the game value and, optionally, the per-infoset
// average strategies.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	cfr "github.com/luca-miniati/game-theory"
	"github.com/luca-miniati/game-theory/dudo"
	"github.com/luca-miniati/game-theory/kuhn"
)

var (
	gameName   = flag.String("game", "kuhn", "Game to solve: kuhn or dudo")
	iters      = flag.Int("iters", 100000, "Number of training iterations")
	strategies = flag.Bool("strategies", false, "Print per-infoset average strategies")
)

func main() {
	flag.Parse()

	var game cfr.Game
	switch *gameName {
	case "kuhn":
		game = kuhn.NewGame()
	case "dudo":
		game = dudo.NewGame()
	default:
		fmt.Fprintf(os.Stderr, "unknown game %q\n", *gameName)
		os.Exit(1)
	}

	glog.Infof("Training %v for %v iterations", *gameName, *iters)
	solver := cfr.New(game)
	trainValue := solver.Train(*iters)
	glog.Infof("Trained %v information sets", solver.NumInfoSets())

	fmt.Printf("Player 0 mean training value: %.4f\n", trainValue)
	ev := solver.ExpectedValue()
	fmt.Printf("Player 0 expected value: %.4f\n", ev)
	fmt.Printf("Player 1 expected value: %.4f\n", -ev)

	if *strategies {
		for _, key := range solver.InfoSetKeys() {
			strat, err := solver.AverageStrategyFor(key)
			if err != nil {
				glog.Exitf("lookup %q: %v", key, err)
			}

			fmt.Printf("%-10s", key)
			for _, p := range strat {
				fmt.Printf(" %.4f", p)
			}
			fmt.Println()
		}
	}
}
