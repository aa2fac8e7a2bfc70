package table

import (
	"sync"

	"github.com/litetable/litetable-rest-client/pkg/bytesutil"
	"github.com/litetable/litetable-rest-client/pkg/cell"
)

// Version is one timestamped value of a column.
type Version struct {
	Timestamp int64
	Value     []byte
}

// QualifierVersions maps qualifiers to their versions, newest first. The slice
// order is the structural stand-in for a descending-timestamp map.
type QualifierVersions map[string][]Version

// Result holds the cells of one row and assembles the layered
// family → qualifier → versions views a caller reads.
//
// The backing cell slice MUST already be sorted per the result's comparator.
// This is a documented precondition, not a runtime-checked one: validating it
// would put a full comparison pass on the hot path of every row. Violating it
// silently breaks every lookup.
//
// A Result exclusively owns its cells and derived caches. It is safe for
// concurrent reads once constructed.
type Result struct {
	cells    []*cell.Cell
	comparer cell.Comparer

	once      sync.Once
	familyMap map[string]QualifierVersions
}

// NewResult wraps a sorted cell slice using the default cell ordering.
func NewResult(cells []*cell.Cell) *Result {
	return NewResultWithComparer(cells, cell.Comparator{})
}

// NewResultWithComparer wraps a sorted cell slice ordered by the given
// comparator. Catalog table rows must be routed through the catalog
// comparator.
func NewResultWithComparer(cells []*cell.Cell, comparer cell.Comparer) *Result {
	return &Result{cells: cells, comparer: comparer}
}

// Row returns the row key, or nil for an empty result.
func (r *Result) Row() []byte {
	if r.IsEmpty() {
		return nil
	}
	return r.cells[0].Row()
}

// RawCells returns the backing cell slice. Callers must not modify it.
func (r *Result) RawCells() []*cell.Cell {
	return r.cells
}

// Size returns the number of cells.
func (r *Result) Size() int {
	return len(r.cells)
}

// IsEmpty reports whether the result holds no cells. An empty result is a
// valid state, not an error.
func (r *Result) IsEmpty() bool {
	return len(r.cells) == 0
}

// binarySearch narrows to the index of the first cell at or after the given
// column via a synthetic first-on-row probe. Returns -1 when every cell sorts
// before the column. The located cell is not guaranteed to match the column;
// callers confirm.
func (r *Result) binarySearch(family, qualifier []byte) int {
	probe := cell.FirstOnRow(r.cells[0].Row(), family, qualifier)
	pos := bytesutil.BinarySearch(r.cells, probe, r.comparer.Compare)
	if pos < 0 {
		pos = -(pos + 1)
	}
	if pos == len(r.cells) {
		return -1
	}
	return pos
}

// ColumnLatestCell returns the newest cell of the given column, or nil when
// the row holds no value for it.
func (r *Result) ColumnLatestCell(family, qualifier []byte) *cell.Cell {
	if r.IsEmpty() {
		return nil
	}
	pos := r.binarySearch(family, qualifier)
	if pos == -1 {
		return nil
	}
	// The search only narrows to an insertion point; confirm the hit.
	if r.cells[pos].MatchingColumn(family, qualifier) {
		return r.cells[pos]
	}
	return nil
}

// ColumnCells returns every version of the given column, newest first.
func (r *Result) ColumnCells(family, qualifier []byte) []*cell.Cell {
	if r.IsEmpty() {
		return nil
	}
	pos := r.binarySearch(family, qualifier)
	if pos == -1 {
		return nil
	}
	var out []*cell.Cell
	for i := pos; i < len(r.cells); i++ {
		if !r.cells[i].MatchingColumn(family, qualifier) {
			break
		}
		out = append(out, r.cells[i])
	}
	return out
}

// Value returns the latest value of the given column, absent when the row
// holds none.
func (r *Result) Value(family, qualifier []byte) ([]byte, bool) {
	c := r.ColumnLatestCell(family, qualifier)
	if c == nil {
		return nil, false
	}
	return c.CloneValue(), true
}

// StringValue returns the latest value of the given column as a string, or
// defaultValue when the row holds none.
func (r *Result) StringValue(family, qualifier, defaultValue string) string {
	v, ok := r.Value([]byte(family), []byte(qualifier))
	if !ok {
		return defaultValue
	}
	return string(v)
}

// Map returns the family → qualifier → versions view, versions newest first.
// Built lazily on first access in one linear pass and cached for the result's
// lifetime; every other map view derives from it. Returns nil for an empty
// result.
func (r *Result) Map() map[string]QualifierVersions {
	if r.IsEmpty() {
		return nil
	}
	r.once.Do(func() {
		m := make(map[string]QualifierVersions)
		for _, c := range r.cells {
			family := string(c.Family())
			qualMap, ok := m[family]
			if !ok {
				qualMap = make(QualifierVersions)
				m[family] = qualMap
			}
			qualifier := string(c.Qualifier())
			// Cells within a column are timestamp-descending, so appending
			// preserves newest-first version order.
			qualMap[qualifier] = append(qualMap[qualifier], Version{
				Timestamp: c.Timestamp(),
				Value:     c.CloneValue(),
			})
		}
		r.familyMap = m
	})
	return r.familyMap
}

// NoVersionMap returns the family → qualifier → latest-value view derived
// from Map by keeping each column's first (newest) version. Returns nil for
// an empty result.
func (r *Result) NoVersionMap() map[string]map[string][]byte {
	full := r.Map()
	if full == nil {
		return nil
	}
	out := make(map[string]map[string][]byte, len(full))
	for family, qualMap := range full {
		flat := make(map[string][]byte, len(qualMap))
		for qualifier, versions := range qualMap {
			flat[qualifier] = versions[0].Value
		}
		out[family] = flat
	}
	return out
}

// FamilyMap returns the qualifier → latest-value view of one family. Returns
// nil when the row holds no cells of the family.
func (r *Result) FamilyMap(family []byte) map[string][]byte {
	full := r.Map()
	if full == nil {
		return nil
	}
	qualMap, ok := full[string(family)]
	if !ok {
		return nil
	}
	out := make(map[string][]byte, len(qualMap))
	for qualifier, versions := range qualMap {
		out[qualifier] = versions[0].Value
	}
	return out
}
