package flcs

// unset marks a cell field that has not been written yet: eval before the
// matcher ran for the cell, best before any path reached it. Match values
// and path scores are never negative, so -1 is unambiguous.
const unset = -1.0

// cell is one entry of the lazily evaluated W×H match matrix.
type cell struct {
	// eval is the matcher's verdict for this cell; unset until the driver
	// first visits it, immutable afterwards.
	eval float64
	// best is the highest cumulative score of any discovered path ending at
	// this cell. Monotonically non-decreasing over the engine's lifetime.
	best float64
}

// cellAt returns the mutable cell for position (i, j).
//
// The matrix is flat, indexed i·H + j. The stride is the height so that
// the mapping stays injective for every W×H shape (a width stride would
// alias distinct cells whenever H > W). The same convention is used by the
// reconstruction back-walk.
func (e *Engine) cellAt(i, j int) *cell {
	return &e.cells[i*e.height+j]
}
