package flcs

import (
	"fmt"
	"math"
)

// Engine is a single-use FLCS solver over a W×H match matrix.
//
// Construction seeds the frontier with the origin candidate; Step expands
// one candidate at a time and Run drives the expansion to completion and
// reconstructs the best path. An engine is not safe for concurrent use;
// distinct engines are independent unless they share an Arena.
type Engine struct {
	width, height   int
	matcher         Matcher
	branchThreshold float64

	arena *Arena
	cells []cell // row-major i·H + j, lazily evaluated

	bestMatch    float64 // highest complete-path score so far, unset if none
	bestI, bestJ int     // last real matrix cell of that path

	numSteps int
	numEvals int
}

// New builds an engine for sequences of length width and height, matched
// by matcher. Options tune the branch threshold and the backing arena.
//
// Errors: ErrBadDimension if either length is < 1, ErrNilMatcher if
// matcher is nil, ErrBadThreshold if a threshold above 1.0 was requested.
func New(width, height int, matcher Matcher, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimension, width, height)
	}
	if matcher == nil {
		return nil, ErrNilMatcher
	}
	if cfg.branchThreshold > 1.0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadThreshold, cfg.branchThreshold)
	}
	if cfg.arena == nil {
		cfg.arena = NewArena()
	}

	e := &Engine{
		width:           width,
		height:          height,
		matcher:         matcher,
		branchThreshold: cfg.branchThreshold,
		arena:           cfg.arena,
		bestMatch:       unset,
	}
	e.cells = e.arena.cellBuf(width * height)
	e.arena.resetNodes()

	// seed the search at the origin
	e.insertCandidate(0, 0, 0)

	return e, nil
}

// Width returns the length of the first sequence.
func (e *Engine) Width() int { return e.width }

// Height returns the length of the second sequence.
func (e *Engine) Height() int { return e.height }

// NumSteps returns how many frontier expansions have run so far.
func (e *Engine) NumSteps() int { return e.numSteps }

// NumEvals returns how many distinct cells the matcher has evaluated.
func (e *Engine) NumEvals() int { return e.numEvals }

// Peek reports the candidate the next Step would expand, without
// expanding it. ok is false once the frontier is exhausted.
func (e *Engine) Peek() (i, j int, score float64, ok bool) {
	if e.frontierEmpty() {
		return 0, 0, 0, false
	}
	c := &e.arena.nodes[e.arena.nodes[queueAnchor].next]

	return int(c.i), int(c.j), c.score, true
}

// Step performs one frontier expansion. It returns false iff the frontier
// is empty and there is nothing left to do.
//
// One expansion: pop the top candidate, evaluate its cell if needed,
// raise the cell's best score, and emit up to three successors — the
// diagonal "take this match" move carrying the raised score, and, for
// cells below the branch threshold, the skip-row / skip-column moves
// carrying the pre-eval score.
func (e *Engine) Step() bool {
	if e.frontierEmpty() {
		return false
	}
	e.numSteps++

	i, j, score := e.popCandidate()

	m := e.cellAt(i, j)
	// An earlier visit already reached this cell with a score the current
	// candidate cannot beat even with a perfect match here.
	if m.best >= score+1 {
		return true
	}

	if m.eval == unset {
		m.eval = e.matcher(i, j)
		if math.IsNaN(m.eval) || m.eval < 0 || m.eval > 1 {
			panic(fmt.Sprintf("flcs: matcher returned %v at (%d,%d), want [0,1]", m.eval, i, j))
		}
		e.numEvals++
	}

	newScore := score + m.eval
	if newScore > m.best {
		m.best = newScore

		if m.eval > 0 {
			e.addCandidate(newScore, i, j, 1, 1)
			// the lower bound just rose; drop tail candidates that can no
			// longer reach it
			e.pruneFrontier(newScore)
		}
		if m.eval < e.branchThreshold {
			e.addCandidate(score, i, j, 1, 0)
			e.addCandidate(score, i, j, 0, 1)
		}
	}

	return true
}

// addCandidate proposes the move (i+di, j+dj) for a path that accumulated
// score up to and including cell (i, j)'s contribution (the skip moves
// pass the pre-eval score, encoding "this cell did not match").
//
// A move off the matrix edge is a finished path: it competes for the
// incumbent best. Anything else joins the frontier, unless its upper
// bound already cannot beat the incumbent.
func (e *Engine) addCandidate(score float64, i, j, di, dj int) {
	ni, nj := i+di, j+dj
	if ni >= e.width || nj >= e.height {
		if score > e.bestMatch {
			e.bestMatch = score
			e.bestI, e.bestJ = i, j
		}

		return
	}

	if e.upperBound(score, ni, nj) > e.bestMatch {
		e.insertCandidate(ni, nj, score)
	}
}

// Run drives the search to completion (it may be called after any number
// of manual Step calls) and reconstructs the best path. Running a
// finished engine again returns the same result.
func (e *Engine) Run() Result {
	for e.Step() {
	}

	return e.reconstruct()
}
