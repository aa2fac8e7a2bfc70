package cell

import (
	"bytes"

	"github.com/litetable/litetable-rest-client/pkg/bytesutil"
)

// CatalogDelimiter separates the segments of a catalog table row key,
// e.g. "namespace,table,id".
const CatalogDelimiter byte = ','

// CatalogComparator orders cells of the system catalog table, whose row keys
// are delimited composite identifiers. The row is split at the first and last
// delimiter occurrence and the three segments are compared in order. At each
// segment boundary a row missing the delimiter sorts after one that has it.
// Non-row terms use the default ordering.
type CatalogComparator struct {
	base Comparator
}

// Compare returns -1, 0 or 1 ordering a against b.
func (c CatalogComparator) Compare(a, b *Cell) int {
	if d := c.CompareRows(a, b); d != 0 {
		return d
	}
	return c.base.CompareWithoutRow(a, b)
}

// CompareRows orders the composite row keys of a and b segment by segment.
func (CatalogComparator) CompareRows(a, b *Cell) int {
	return compareCatalogRows(a.row, b.row)
}

func compareCatalogRows(left, right []byte) int {
	// First segment: up to the first delimiter.
	lDelim := bytes.IndexByte(left, CatalogDelimiter)
	rDelim := bytes.IndexByte(right, CatalogDelimiter)
	lPart, rPart := left, right
	if lDelim >= 0 {
		lPart = left[:lDelim]
	}
	if rDelim >= 0 {
		rPart = right[:rDelim]
	}
	if d := bytesutil.Compare(lPart, rPart); d != 0 {
		return d
	}
	if d, done := missingDelimiterOrder(lDelim, rDelim); done {
		return d
	}

	// Middle segment: between the first and last delimiters.
	lRest := left[lDelim+1:]
	rRest := right[rDelim+1:]
	lFar := bytes.LastIndexByte(lRest, CatalogDelimiter)
	rFar := bytes.LastIndexByte(rRest, CatalogDelimiter)
	lPart, rPart = lRest, rRest
	if lFar >= 0 {
		lPart = lRest[:lFar]
	}
	if rFar >= 0 {
		rPart = rRest[:rFar]
	}
	if d := bytesutil.Compare(lPart, rPart); d != 0 {
		return d
	}
	if d, done := missingDelimiterOrder(lFar, rFar); done {
		return d
	}

	// Last segment: everything after the last delimiter.
	return bytesutil.Compare(lRest[lFar+1:], rRest[rFar+1:])
}

// missingDelimiterOrder resolves the case where one side has no further
// delimiter: the side missing it sorts larger. Returns done=false when both
// sides still have segments to compare.
func missingDelimiterOrder(lDelim, rDelim int) (int, bool) {
	switch {
	case lDelim < 0 && rDelim < 0:
		return 0, true
	case lDelim < 0:
		return 1, true
	case rDelim < 0:
		return -1, true
	}
	return 0, false
}
