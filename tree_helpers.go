package cfr

// CountInfoSets returns the number of distinct information sets reachable
// across every chance outcome of the game.
func CountInfoSets(g Game) int {
	seen := make(map[string]struct{})
	for _, deal := range g.ChanceOutcomes() {
		walkInfoSets(g, deal, History(""), seen)
	}

	return len(seen)
}

func walkInfoSets(g Game, deal ChanceOutcome, h History, seen map[string]struct{}) {
	if g.IsTerminal(h) {
		return
	}

	seen[g.InfoSetKey(g.CurrentPlayer(h), deal, h)] = struct{}{}
	for _, a := range g.LegalActions(h) {
		walkInfoSets(g, deal, h.Append(a), seen)
	}
}

// CountTerminalHistories returns the total number of terminal histories,
// summed over every chance outcome of the game.
func CountTerminalHistories(g Game) int {
	total := 0
	for _, deal := range g.ChanceOutcomes() {
		total += countTerminal(g, deal, History(""))
	}

	return total
}

func countTerminal(g Game, deal ChanceOutcome, h History) int {
	if g.IsTerminal(h) {
		return 1
	}

	total := 0
	for _, a := range g.LegalActions(h) {
		total += countTerminal(g, deal, h.Append(a))
	}

	return total
}
