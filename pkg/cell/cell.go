// Package cell defines the versioned cell tuple exchanged with the REST
// gateway and the comparators that establish its total order.
package cell

import (
	"errors"
	"fmt"
	"math"

	"github.com/litetable/litetable-rest-client/pkg/bytesutil"
)

const (
	// MaxRowLength is the largest row key the gateway accepts.
	MaxRowLength = math.MaxInt16

	// LatestTimestamp is the sentinel meaning "the newest available version".
	LatestTimestamp int64 = math.MaxInt64
)

var (
	errRowTooLong        = errors.New("row key exceeds maximum length")
	errEmptyRow          = errors.New("row key cannot be empty")
	errNegativeTimestamp = errors.New("timestamp cannot be negative")
)

// Type tags a cell with the mutation it represents. The numeric codes are part
// of the sort order: higher codes sort first within a column version.
type Type byte

const (
	TypeMinimum             Type = 0
	TypePut                 Type = 4
	TypeDelete              Type = 8
	TypeDeleteFamilyVersion Type = 10
	TypeDeleteColumn        Type = 12
	TypeDeleteFamily        Type = 14
	TypeMaximum             Type = 255
)

func (t Type) String() string {
	switch t {
	case TypeMinimum:
		return "Minimum"
	case TypePut:
		return "Put"
	case TypeDelete:
		return "Delete"
	case TypeDeleteFamilyVersion:
		return "DeleteFamilyVersion"
	case TypeDeleteColumn:
		return "DeleteColumn"
	case TypeDeleteFamily:
		return "DeleteFamily"
	case TypeMaximum:
		return "Maximum"
	}
	return fmt.Sprintf("Type(%d)", byte(t))
}

// Cell is one versioned (row, family, qualifier, timestamp, value) fact.
// Cells are immutable once constructed; accessors return the backing slices
// and callers must not modify them.
type Cell struct {
	row       []byte
	family    []byte
	qualifier []byte
	timestamp int64
	cellType  Type
	value     []byte
}

// New constructs a cell, validating the row length and the timestamp. The
// LatestTimestamp sentinel is the only non-negative exemption required; any
// negative timestamp is rejected.
func New(row, family, qualifier []byte, timestamp int64, cellType Type, value []byte) (*Cell, error) {
	if len(row) == 0 {
		return nil, errEmptyRow
	}
	if len(row) > MaxRowLength {
		return nil, fmt.Errorf("%w: %d > %d", errRowTooLong, len(row), MaxRowLength)
	}
	if timestamp < 0 {
		return nil, fmt.Errorf("%w: %d", errNegativeTimestamp, timestamp)
	}
	return &Cell{
		row:       row,
		family:    family,
		qualifier: qualifier,
		timestamp: timestamp,
		cellType:  cellType,
		value:     value,
	}, nil
}

// FirstOnRow builds the synthetic probe cell that sorts before every concrete
// cell of the given row/family/qualifier. Used as a binary search pivot.
func FirstOnRow(row, family, qualifier []byte) *Cell {
	return &Cell{
		row:       row,
		family:    family,
		qualifier: qualifier,
		timestamp: LatestTimestamp,
		cellType:  TypeMaximum,
	}
}

func (c *Cell) Row() []byte       { return c.row }
func (c *Cell) Family() []byte    { return c.family }
func (c *Cell) Qualifier() []byte { return c.qualifier }
func (c *Cell) Timestamp() int64  { return c.timestamp }
func (c *Cell) Type() Type        { return c.cellType }
func (c *Cell) Value() []byte     { return c.value }

// CloneValue returns an owned copy of the cell value.
func (c *Cell) CloneValue() []byte {
	return bytesutil.Copy(c.value)
}

// MatchingColumn reports whether the cell belongs to the given column.
func (c *Cell) MatchingColumn(family, qualifier []byte) bool {
	return bytesutil.Equal(c.family, family) && bytesutil.Equal(c.qualifier, qualifier)
}

func (c *Cell) String() string {
	return fmt.Sprintf("%s/%s:%s/%d/%s", c.row, c.family, c.qualifier, c.timestamp, c.cellType)
}
