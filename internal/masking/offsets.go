package masking

// #region offset-table

// OffsetTable tracks, per original index, the signed delta between that index
// and its current index in the evolving masked buffer. A hole of length L
// placed at original index i shifts every later index by 1-L (the run of L
// tokens collapses into one placeholder).
type OffsetTable []int

// NewOffsetTable returns a zeroed table for a sequence of length n.
func NewOffsetTable(n int) OffsetTable {
	return make(OffsetTable, n)
}

// BufferIndex maps an original index to its current buffer index.
func (t OffsetTable) BufferIndex(pos int) int {
	return pos + t[pos]
}

// Shift applies delta to every entry strictly after pos.
func (t OffsetTable) Shift(pos, delta int) {
	for i := pos + 1; i < len(t); i++ {
		t[i] += delta
	}
}

// #endregion offset-table
