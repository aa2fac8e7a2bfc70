package table

import "math"

// Get specifies a single-row read: which row, which columns, how many versions
// and which time range. Build it fluently, hand it to RemoteTable.Get once,
// then discard it.
type Get struct {
	row         []byte
	cols        *columnSet
	maxVersions int
	timeRange   TimeRange
}

// NewGet creates a read of the given row selecting, until narrowed, every
// column's latest version.
func NewGet(row []byte) *Get {
	return &Get{
		row:         row,
		cols:        newColumnSet(),
		maxVersions: 1,
		timeRange:   allTime,
	}
}

// AddFamily selects all columns of a family.
func (g *Get) AddFamily(family []byte) *Get {
	g.cols.addFamily(family)
	return g
}

// AddColumn selects one column.
func (g *Get) AddColumn(family, qualifier []byte) *Get {
	g.cols.addColumn(family, qualifier)
	return g
}

// SetTimeRange restricts the read to versions within [min, max).
func (g *Get) SetTimeRange(min, max int64) (*Get, error) {
	tr, err := newTimeRange(min, max)
	if err != nil {
		return nil, err
	}
	g.timeRange = tr
	return g, nil
}

// ReadAllVersions lifts the version limit.
func (g *Get) ReadAllVersions() *Get {
	g.maxVersions = math.MaxInt32
	return g
}

// ReadVersions limits the read to the newest n versions per column.
func (g *Get) ReadVersions(n int) (*Get, error) {
	if n <= 0 {
		return nil, newError(errInvalidVersions, "got %d", n)
	}
	g.maxVersions = n
	return g, nil
}

// Row returns the row key being read.
func (g *Get) Row() []byte {
	return g.row
}

// MaxVersions returns the per-column version limit.
func (g *Get) MaxVersions() int {
	return g.maxVersions
}

// TimeRange returns the version time bounds.
func (g *Get) TimeRange() TimeRange {
	return g.timeRange
}

// HasFamilies reports whether the read was narrowed to specific columns.
func (g *Get) HasFamilies() bool {
	return !g.cols.isEmpty()
}

// NumFamilies returns the number of selected families.
func (g *Get) NumFamilies() int {
	return g.cols.numFamilies()
}
