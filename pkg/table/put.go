package table

import "github.com/litetable/litetable-rest-client/pkg/cell"

// Put accumulates cells to write to one row.
type Put struct {
	mutation
}

// NewPut creates a put against the given row using the latest-timestamp
// sentinel for cells added without an explicit timestamp: the gateway assigns
// the server-side write time.
func NewPut(row []byte) (*Put, error) {
	return NewPutAt(row, cell.LatestTimestamp)
}

// NewPutAt creates a put whose cells default to the given timestamp.
func NewPutAt(row []byte, timestamp int64) (*Put, error) {
	m, err := newMutation(row, timestamp)
	if err != nil {
		return nil, err
	}
	return &Put{mutation: m}, nil
}

// AddColumn stages a value for one column at the put's default timestamp.
func (p *Put) AddColumn(family, qualifier, value []byte) (*Put, error) {
	return p.AddColumnAt(family, qualifier, p.timestamp, value)
}

// AddColumnAt stages a value for one column at an explicit timestamp.
func (p *Put) AddColumnAt(family, qualifier []byte, timestamp int64, value []byte) (*Put, error) {
	c, err := cell.New(p.row, family, qualifier, timestamp, cell.TypePut, value)
	if err != nil {
		return nil, err
	}
	if err := p.add(c); err != nil {
		return nil, err
	}
	return p, nil
}

// Add stages a pre-built cell. The cell's row must match the put's row.
func (p *Put) Add(c *cell.Cell) error {
	return p.add(c)
}
