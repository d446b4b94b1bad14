// Package flcs solves the Fuzzy Longest Common Subsequence (FLCS) problem:
// given two sequences and a match function f(i,j) → [0,1], find the
// monotonically increasing pairing of indices that maximises the summed
// match values.
//
// 🚀 What is FLCS?
//
//	Classical LCS pairs elements under binary equality. FLCS generalises
//	the comparison to a continuous match weight in [0,1], which fits:
//	  • Fuzzy diffing of records, commands or UI trees
//	  • Aligning noisy event streams or telemetry traces
//	  • Approximate string / token matching with per-pair similarity
//	  • Any alignment where "equal" is a matter of degree
//
// ✨ Key features:
//   - lazy evaluation: the match function runs at most once per cell,
//     and only for cells the search actually reaches
//   - best-first search with branch-and-bound pruning: well-matching
//     inputs cost ~O(n) evaluations instead of the O(W·H) of a DP fill
//   - exact result at BranchThreshold = 1.0; a tunable speed/accuracy
//     trade-off below it
//   - full path reconstruction: every matched (i, j, value) triple of the
//     best alignment, in forward order
//   - reusable Arena backing storage for allocation-free repeated runs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/flcs"
//
//	a, b := []rune("kitten"), []rune("sitting")
//	eng, err := flcs.New(len(a), len(b), func(i, j int) float64 {
//	    if a[i] == b[j] {
//	        return 1
//	    }
//	    return 0
//	}, flcs.WithBranchThreshold(1.0))
//	if err != nil {
//	    // handle ErrBadDimension, ErrNilMatcher or ErrBadThreshold
//	}
//	res := eng.Run()
//	fmt.Println(res.TotalMatch, res.Matches)
//
// Performance:
//
//   - Time:   O(W·H) worst case; ~O(min(W,H)) evaluations for
//     well-matching sequences
//   - Memory: O(W·H) for the match matrix (allocated once, reusable
//     through an Arena)
//
// The engine is single-threaded; distinct engine instances are
// independent. See example_test.go for runnable walkthroughs.
package flcs
