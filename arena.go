package flcs

// Arena is reusable backing storage for engines: the match matrix, the
// candidate records of the frontier, and the result buffer are all carved
// out of one arena.
//
// Lifetime contract: every buffer handed out — including Result.Matches —
// stays valid until the arena is used to construct another engine.
// Constructing a new engine on the same arena recycles the storage
// wholesale, so sequential runs over similarly sized inputs allocate
// (almost) nothing after the first.
//
// An arena must not back two engines that run concurrently.
type Arena struct {
	cells   []cell
	nodes   []candidate
	matches []Match
}

// NewArena returns an empty arena. The zero value is also ready to use.
func NewArena() *Arena { return &Arena{} }

// cellBuf returns a buffer of n cells, every one reset to the unevaluated,
// no-path state.
func (a *Arena) cellBuf(n int) []cell {
	if cap(a.cells) < n {
		a.cells = make([]cell, n)
	}
	a.cells = a.cells[:n]
	for idx := range a.cells {
		a.cells[idx] = cell{eval: unset, best: unset}
	}

	return a.cells
}

// resetNodes truncates the candidate slab to the two anchor records
// (queue and free list), each linked to itself.
func (a *Arena) resetNodes() {
	if cap(a.nodes) < 2 {
		a.nodes = make([]candidate, 2, 64)
	}
	a.nodes = a.nodes[:2]
	a.nodes[queueAnchor] = candidate{prev: queueAnchor, next: queueAnchor}
	a.nodes[freeAnchor] = candidate{prev: freeAnchor, next: freeAnchor}
}

// matchBuf returns a buffer of n result entries.
func (a *Arena) matchBuf(n int) []Match {
	if cap(a.matches) < n {
		a.matches = make([]Match, n)
	}
	a.matches = a.matches[:n]

	return a.matches
}
