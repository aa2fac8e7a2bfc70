package table

import (
	"sort"

	"github.com/litetable/litetable-rest-client/pkg/bytesutil"
	"github.com/litetable/litetable-rest-client/pkg/cell"
)

// TimeRange bounds the versions an operation reads: [Min, Max).
type TimeRange struct {
	Min int64
	Max int64
}

// allTime covers every representable version.
var allTime = TimeRange{Min: 0, Max: cell.LatestTimestamp}

func newTimeRange(min, max int64) (TimeRange, error) {
	if min < 0 || max < 0 {
		return TimeRange{}, newError(errInvalidTimeRange, "bounds cannot be negative: [%d, %d)", min, max)
	}
	if min > max {
		return TimeRange{}, newError(errInvalidTimeRange, "min %d > max %d", min, max)
	}
	return TimeRange{Min: min, Max: max}, nil
}

// IsAllTime reports whether the range covers every version.
func (t TimeRange) IsAllTime() bool {
	return t == allTime
}

// columnSet accumulates a family → qualifier selection. A family mapped to a
// nil set means "all qualifiers". Families and qualifiers iterate in their
// natural byte order, not insertion order, because path construction and
// lookups rely on sorted semantics.
type columnSet struct {
	families map[string]*qualifierSet
}

func newColumnSet() *columnSet {
	return &columnSet{families: make(map[string]*qualifierSet)}
}

// addFamily selects every qualifier of a family, superseding any narrower
// selection recorded earlier.
func (c *columnSet) addFamily(family []byte) {
	c.families[string(family)] = nil
}

// addColumn selects one qualifier. A no-op when the whole family is already
// selected.
func (c *columnSet) addColumn(family, qualifier []byte) {
	key := string(family)
	set, ok := c.families[key]
	if ok && set == nil {
		return
	}
	if !ok {
		set = &qualifierSet{}
		c.families[key] = set
	}
	set.add(qualifier)
}

func (c *columnSet) isEmpty() bool {
	return len(c.families) == 0
}

func (c *columnSet) numFamilies() int {
	return len(c.families)
}

// sortedFamilies returns the selected family names in byte order.
func (c *columnSet) sortedFamilies() []string {
	out := make([]string, 0, len(c.families))
	for f := range c.families {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// qualifiers returns the selected qualifiers of a family in byte order, or
// allQualifiers=true when the whole family is selected.
func (c *columnSet) qualifiers(family string) (quals [][]byte, allQualifiers bool) {
	set, ok := c.families[family]
	if !ok {
		return nil, false
	}
	if set == nil {
		return nil, true
	}
	return set.ordered, false
}

// qualifierSet is an ordered, duplicate-free set of qualifier byte strings.
type qualifierSet struct {
	ordered [][]byte
}

func (s *qualifierSet) add(qualifier []byte) {
	pos := bytesutil.BinarySearch(s.ordered, qualifier, bytesutil.Compare)
	if pos >= 0 {
		return
	}
	at := -(pos + 1)
	s.ordered = append(s.ordered, nil)
	copy(s.ordered[at+1:], s.ordered[at:])
	s.ordered[at] = qualifier
}

// mutation is the shared state of Put and Delete: a row key, a default
// timestamp and the cells to apply grouped by family. A mutation is built by
// one caller, consumed by exactly one operation call and then discarded.
type mutation struct {
	row         []byte
	timestamp   int64
	familyCells map[string][]*cell.Cell
}

func newMutation(row []byte, timestamp int64) (mutation, error) {
	// Probe the row constraints the same way a cell construction would.
	if _, err := cell.New(row, nil, nil, cell.LatestTimestamp, cell.TypePut, nil); err != nil {
		return mutation{}, err
	}
	return mutation{
		row:         row,
		timestamp:   timestamp,
		familyCells: make(map[string][]*cell.Cell),
	}, nil
}

// Row returns the row key the mutation applies to.
func (m *mutation) Row() []byte {
	return m.row
}

// Timestamp returns the default timestamp applied to cells without an
// explicit one.
func (m *mutation) Timestamp() int64 {
	return m.timestamp
}

func (m *mutation) add(c *cell.Cell) error {
	if !bytesutil.Equal(c.Row(), m.row) {
		return newError(errRowMismatch, "cell row %q, mutation row %q", c.Row(), m.row)
	}
	key := string(c.Family())
	m.familyCells[key] = append(m.familyCells[key], c)
	return nil
}

// sortedFamilies returns the families carrying cells in byte order.
func (m *mutation) sortedFamilies() []string {
	out := make([]string, 0, len(m.familyCells))
	for f := range m.familyCells {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Cells returns every accumulated cell, families in byte order, cells within
// a family in insertion order.
func (m *mutation) Cells() []*cell.Cell {
	var out []*cell.Cell
	for _, f := range m.sortedFamilies() {
		out = append(out, m.familyCells[f]...)
	}
	return out
}

// IsEmpty reports whether the mutation carries no cells.
func (m *mutation) IsEmpty() bool {
	return len(m.familyCells) == 0
}
