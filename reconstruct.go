package flcs

import "math"

const (
	// scoreEps is the tolerance for comparing cumulative path scores during
	// the back-walk. Scores are produced by short chains of float64
	// additions, so any drift is far below this.
	scoreEps = 1e-3

	// matchEps bounds the residual score at which the back-walk considers
	// the path fully explained.
	matchEps = 1e-3
)

func scoreEq(a, b float64) bool {
	return math.Abs(a-b) <= scoreEps
}

// reconstruct walks the match matrix backwards from the best terminal
// cell and recovers the matched pairs of that path, written back-to-front
// into a min(W,H) buffer.
//
// The walk keeps the still-unexplained score b (initially the full best
// score). At each cell it first tries the moves that do not consume a
// match: stepping to a neighbour whose best equals b (the path passed
// through without matching here), or to a skip-source neighbour whose
// pre-eval score best−eval equals b (the path went through a positive
// cell without taking its match). When no such move fits, the current
// cell's match is on the path: emit it and subtract its eval from b.
// The walk ends when b is fully consumed.
//
// Below a branch threshold of 1.0 the search itself is heuristic, and so
// is the walk: the defensive guards on the emit step make it terminate
// rather than fabricate pairs if the matrix holds no consistent
// explanation of b.
func (e *Engine) reconstruct() Result {
	total := e.bestMatch
	if total < 0 {
		total = 0
	}

	maxMatches := min(e.width, e.height)
	buf := e.arena.matchBuf(maxMatches)
	out := maxMatches

	i, j := e.bestI, e.bestJ
	b := total
	lastI, lastJ := e.width, e.height // emitted pairs must stay strictly below

	for b > matchEps {
		switch {
		case i > 0 && scoreEq(e.cellAt(i-1, j).best, b):
			i-- // this column provided no match
		case j > 0 && scoreEq(e.cellAt(i, j-1).best, b):
			j-- // this row provided no match
		case i > 0 && j > 0 && scoreEq(e.cellAt(i-1, j-1).best, b):
			i-- // carried in diagonally from an earlier match
			j--
		case i > 0 && skipSource(e.cellAt(i-1, j), b):
			i-- // entered by skipping a positive cell's match
		case j > 0 && skipSource(e.cellAt(i, j-1), b):
			j--
		default:
			m := e.cellAt(i, j)
			if m.eval <= 0 || m.eval > b+matchEps || i >= lastI || j >= lastJ {
				// no consistent explanation left (heuristic-threshold runs)
				return Result{TotalMatch: total, Matches: buf[out:]}
			}
			out--
			buf[out] = Match{I: i, J: j, Value: m.eval}
			lastI, lastJ = i, j
			b -= m.eval
		}
	}

	return Result{TotalMatch: total, Matches: buf[out:]}
}

// skipSource reports whether c was a visited positive cell whose pre-eval
// score equals b — i.e. the path left c without taking its match.
func skipSource(c *cell, b float64) bool {
	return c.eval > 0 && scoreEq(c.best-c.eval, b)
}
