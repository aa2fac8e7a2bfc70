package cell

import "github.com/litetable/litetable-rest-client/pkg/bytesutil"

// Comparer establishes a total order over cells. Implementations are stateless
// values, safe to share across goroutines.
type Comparer interface {
	Compare(a, b *Cell) int
	CompareRows(a, b *Cell) int
}

// Comparator is the default cell ordering:
// row asc, family asc, qualifier asc, timestamp desc, type code desc.
// Descending timestamps are intentional so that the newest version of a column
// is the first one encountered when walking a sorted run of cells.
type Comparator struct{}

// Compare returns -1, 0 or 1 ordering a against b.
func (c Comparator) Compare(a, b *Cell) int {
	if d := c.CompareRows(a, b); d != 0 {
		return d
	}
	return c.CompareWithoutRow(a, b)
}

// CompareRows orders only the row keys of a and b.
func (Comparator) CompareRows(a, b *Cell) int {
	if a == b {
		return 0
	}
	return bytesutil.Compare(a.row, b.row)
}

// CompareFamilies orders only the family parts of a and b.
func (Comparator) CompareFamilies(a, b *Cell) int {
	return bytesutil.Compare(a.family, b.family)
}

// CompareQualifiers orders only the qualifier parts of a and b.
func (Comparator) CompareQualifiers(a, b *Cell) int {
	return bytesutil.Compare(a.qualifier, b.qualifier)
}

// CompareWithoutRow orders a against b ignoring the row term. When the family
// lengths differ the family comparison alone decides: a cell carrying no
// column (a whole-row delete) must sort apart from every concrete column
// without ever consulting the qualifier.
func (c Comparator) CompareWithoutRow(a, b *Cell) int {
	if len(a.family) != len(b.family) {
		return c.CompareFamilies(a, b)
	}
	if d := c.CompareFamilies(a, b); d != 0 {
		return d
	}
	if d := c.CompareQualifiers(a, b); d != 0 {
		return d
	}
	if d := c.CompareTimestamps(a.timestamp, b.timestamp); d != 0 {
		return d
	}
	// Higher type codes sort first, so deletes precede puts at the same
	// timestamp and the Maximum probe type precedes everything.
	return int(b.cellType) - int(a.cellType)
}

// CompareTimestamps orders timestamps in descending order: the newer timestamp
// sorts first.
func (Comparator) CompareTimestamps(a, b int64) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	}
	return 0
}
