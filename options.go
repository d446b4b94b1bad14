package flcs

// DefaultBranchThreshold is the branch threshold applied when no
// WithBranchThreshold option is given.
//
// A cell whose match value reaches the threshold is considered "good
// enough": the engine commits to the diagonal move and does not branch
// into the skip-row/skip-column alternatives. At 1.0 the search is exact;
// below 1.0 it trades a sliver of accuracy for substantially fewer
// candidates on fuzzy inputs.
const DefaultBranchThreshold = 0.95

// config collects the constructor knobs. Zero value is not usable;
// defaultConfig supplies the documented defaults.
type config struct {
	branchThreshold float64
	arena           *Arena
}

func defaultConfig() config {
	return config{branchThreshold: DefaultBranchThreshold}
}

// Option customises engine construction.
type Option func(*config)

// WithBranchThreshold sets the branch threshold. Values ≤ 0 suppress all
// skip branches (every evaluated cell is committed); 1.0 makes the search
// exact. Thresholds above 1.0 are rejected by New with ErrBadThreshold.
func WithBranchThreshold(t float64) Option {
	return func(c *config) { c.branchThreshold = t }
}

// WithArena makes the engine borrow its backing storage (match matrix,
// candidate records, result buffer) from a, instead of allocating a
// private arena. Passing nil is equivalent to omitting the option.
//
// Reusing one arena across sequential runs avoids re-allocating the
// matrix; see Arena for the lifetime rules.
func WithArena(a *Arena) Option {
	return func(c *config) { c.arena = a }
}
