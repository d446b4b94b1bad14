package flcs

// The candidate frontier is an intrusive doubly-linked queue kept in
// descending metric order, plus a free list that recycles popped records.
// Both lists live in one grow-only slab (Arena.nodes); prev/next are
// 32-bit indices into that slab, with two reserved anchor records that
// link to themselves when their list is empty. Index links instead of
// pointers keep the slab relocatable when it grows.
//
// The ordering metric is upperBound + 0.01·score: best-first over
// potential, with the raw score as a tie-breaker favouring candidates
// further along an actual path. Pruning walks from the tail and stops at
// the first survivor — valid only because the metric is a monotone
// function of the upper bound, so tail order is ascending in upper bound.
// A score-first (depth-first) metric would break that assumption and
// would force prune into a full sweep.

const (
	// queueAnchor is the reserved slab index anchoring the frontier queue.
	queueAnchor uint32 = 0
	// freeAnchor is the reserved slab index anchoring the free list.
	freeAnchor uint32 = 1
)

// candidate is a prospective visit to cell (i, j) on a path whose
// accumulated score before incorporating that cell's eval is score.
type candidate struct {
	i, j  int32
	score float64
	prev  uint32
	next  uint32
}

// upperBound is the optimistic ceiling on any completion of a path that
// sits at (i, j) with the given accumulated score: at most min(W−i, H−j)
// diagonal steps remain and each contributes at most 1.
func (e *Engine) upperBound(score float64, i, j int) float64 {
	return score + float64(min(e.width-i, e.height-j))
}

// metric is the queue ordering key. See the comment at the top of this file.
func (e *Engine) metric(score float64, i, j int) float64 {
	return e.upperBound(score, i, j) + 0.01*score
}

func (e *Engine) metricOf(idx uint32) float64 {
	c := &e.arena.nodes[idx]

	return e.metric(c.score, int(c.i), int(c.j))
}

// unlink removes slab record idx from whichever list it is on.
func (e *Engine) unlink(idx uint32) {
	ns := e.arena.nodes
	ns[ns[idx].prev].next = ns[idx].next
	ns[ns[idx].next].prev = ns[idx].prev
}

// insertBefore splices idx in front of anchor.
func (e *Engine) insertBefore(anchor, idx uint32) {
	ns := e.arena.nodes
	p := ns[anchor].prev
	ns[idx].next = anchor
	ns[idx].prev = p
	ns[p].next = idx
	ns[anchor].prev = idx
}

// insertAfter splices idx right behind anchor.
func (e *Engine) insertAfter(anchor, idx uint32) {
	ns := e.arena.nodes
	n := ns[anchor].next
	ns[idx].prev = anchor
	ns[idx].next = n
	ns[n].prev = idx
	ns[anchor].next = idx
}

// frontierEmpty reports whether the queue holds no candidates.
func (e *Engine) frontierEmpty() bool {
	return e.arena.nodes[queueAnchor].next == queueAnchor
}

// insertCandidate takes a record from the free list (or grows the slab)
// and splices it into the queue in descending metric order. Equal-metric
// candidates go after the existing ones: the scan runs to the first
// strictly lower position, keeping insertion stable.
func (e *Engine) insertCandidate(i, j int, score float64) {
	var idx uint32
	if e.arena.nodes[freeAnchor].next != freeAnchor {
		idx = e.arena.nodes[freeAnchor].next
		e.unlink(idx)
	} else {
		e.arena.nodes = append(e.arena.nodes, candidate{})
		idx = uint32(len(e.arena.nodes) - 1)
	}

	n := &e.arena.nodes[idx]
	n.i, n.j, n.score = int32(i), int32(j), score

	m := e.metric(score, i, j)
	at := e.arena.nodes[queueAnchor].next
	for at != queueAnchor && e.metricOf(at) >= m {
		at = e.arena.nodes[at].next
	}
	e.insertBefore(at, idx)
}

// popCandidate removes the head (highest metric) candidate and moves its
// record to the free list. The caller must have checked frontierEmpty.
func (e *Engine) popCandidate() (i, j int, score float64) {
	head := e.arena.nodes[queueAnchor].next
	c := e.arena.nodes[head]
	e.unlink(head)
	e.insertAfter(freeAnchor, head)

	return int(c.i), int(c.j), c.score
}

// pruneFrontier unlinks, from the tail inward, every candidate whose
// upper bound falls below minScore, and stops at the first survivor.
// Correct only under the metric above; see the comment at the top of this
// file.
func (e *Engine) pruneFrontier(minScore float64) {
	it := e.arena.nodes[queueAnchor].prev
	for it != queueAnchor {
		c := &e.arena.nodes[it]
		if e.upperBound(c.score, int(c.i), int(c.j)) >= minScore {
			return
		}
		p := c.prev
		e.unlink(it)
		e.insertAfter(freeAnchor, it)
		it = p
	}
}
