package table

import "github.com/litetable/litetable-rest-client/pkg/cell"

// Delete accumulates deletion markers for one row. An empty delete removes the
// whole row.
type Delete struct {
	mutation
}

// NewDelete creates a delete against the given row covering, per marker,
// everything up to the latest version.
func NewDelete(row []byte) (*Delete, error) {
	return NewDeleteAt(row, cell.LatestTimestamp)
}

// NewDeleteAt creates a delete whose markers default to the given timestamp:
// markers cover versions at or before it.
func NewDeleteAt(row []byte, timestamp int64) (*Delete, error) {
	m, err := newMutation(row, timestamp)
	if err != nil {
		return nil, err
	}
	return &Delete{mutation: m}, nil
}

// AddFamily marks every column of a family deleted up to the delete's default
// timestamp. Any narrower marker already staged for the family is superseded.
func (d *Delete) AddFamily(family []byte) (*Delete, error) {
	return d.addMarker(family, nil, d.timestamp, cell.TypeDeleteFamily, true)
}

// AddFamilyAt marks every column of a family deleted up to an explicit
// timestamp.
func (d *Delete) AddFamilyAt(family []byte, timestamp int64) (*Delete, error) {
	return d.addMarker(family, nil, timestamp, cell.TypeDeleteFamily, true)
}

// AddFamilyVersion marks only the family cells written at exactly the given
// timestamp.
func (d *Delete) AddFamilyVersion(family []byte, timestamp int64) (*Delete, error) {
	return d.addMarker(family, nil, timestamp, cell.TypeDeleteFamilyVersion, false)
}

// AddColumn marks the latest version of one column.
func (d *Delete) AddColumn(family, qualifier []byte) (*Delete, error) {
	return d.addMarker(family, qualifier, d.timestamp, cell.TypeDelete, false)
}

// AddColumnAt marks the version of one column written at exactly the given
// timestamp.
func (d *Delete) AddColumnAt(family, qualifier []byte, timestamp int64) (*Delete, error) {
	return d.addMarker(family, qualifier, timestamp, cell.TypeDelete, false)
}

// AddColumns marks every version of one column up to the delete's default
// timestamp.
func (d *Delete) AddColumns(family, qualifier []byte) (*Delete, error) {
	return d.addMarker(family, qualifier, d.timestamp, cell.TypeDeleteColumn, false)
}

// AddColumnsAt marks every version of one column up to an explicit timestamp.
func (d *Delete) AddColumnsAt(family, qualifier []byte, timestamp int64) (*Delete, error) {
	return d.addMarker(family, qualifier, timestamp, cell.TypeDeleteColumn, false)
}

func (d *Delete) addMarker(family, qualifier []byte, timestamp int64, t cell.Type, wholeFamily bool) (*Delete, error) {
	if wholeFamily {
		// A whole-family marker covers everything staged before it.
		delete(d.familyCells, string(family))
	}
	c, err := cell.New(d.row, family, qualifier, timestamp, t, nil)
	if err != nil {
		return nil, err
	}
	if err := d.add(c); err != nil {
		return nil, err
	}
	return d, nil
}
