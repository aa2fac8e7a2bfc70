package table

import "math"

const defaultScanBatch = 1000

// Scan specifies a range read: a start/stop row pair, a column selection, a
// version limit and a time range. Consumed once by RemoteTable.Scan.
type Scan struct {
	startRow    []byte
	stopRow     []byte
	cols        *columnSet
	maxVersions int
	batch       int
	timeRange   TimeRange
}

// NewScan creates a scan over the whole table.
func NewScan() *Scan {
	return &Scan{
		cols:        newColumnSet(),
		maxVersions: 1,
		batch:       defaultScanBatch,
		timeRange:   allTime,
	}
}

// WithStartRow sets the inclusive row to start at.
func (s *Scan) WithStartRow(row []byte) *Scan {
	s.startRow = row
	return s
}

// WithStopRow sets the exclusive row to stop before.
func (s *Scan) WithStopRow(row []byte) *Scan {
	s.stopRow = row
	return s
}

// WithRowPrefix restricts the scan to rows beginning with prefix by deriving
// the tightest start/stop pair. The stop row is the prefix with its last
// non-0xff byte incremented; an all-0xff prefix scans to the end of the table.
func (s *Scan) WithRowPrefix(prefix []byte) *Scan {
	if len(prefix) == 0 {
		s.startRow = nil
		s.stopRow = nil
		return s
	}
	s.startRow = prefix
	stop := make([]byte, len(prefix))
	copy(stop, prefix)
	for i := len(stop) - 1; i >= 0; i-- {
		if stop[i] != 0xff {
			stop[i]++
			s.stopRow = stop[:i+1]
			return s
		}
	}
	s.stopRow = nil
	return s
}

// AddFamily selects all columns of a family.
func (s *Scan) AddFamily(family []byte) *Scan {
	s.cols.addFamily(family)
	return s
}

// AddColumn selects one column.
func (s *Scan) AddColumn(family, qualifier []byte) *Scan {
	s.cols.addColumn(family, qualifier)
	return s
}

// SetTimeRange restricts the scan to versions within [min, max).
func (s *Scan) SetTimeRange(min, max int64) (*Scan, error) {
	tr, err := newTimeRange(min, max)
	if err != nil {
		return nil, err
	}
	s.timeRange = tr
	return s, nil
}

// SetBatch caps the number of cells returned by one scanner fetch.
func (s *Scan) SetBatch(n int) *Scan {
	if n > 0 {
		s.batch = n
	}
	return s
}

// ReadAllVersions lifts the version limit.
func (s *Scan) ReadAllVersions() *Scan {
	s.maxVersions = math.MaxInt32
	return s
}

// ReadVersions limits the scan to the newest n versions per column.
func (s *Scan) ReadVersions(n int) (*Scan, error) {
	if n <= 0 {
		return nil, newError(errInvalidVersions, "got %d", n)
	}
	s.maxVersions = n
	return s, nil
}

// StartRow returns the inclusive start row, nil meaning the table start.
func (s *Scan) StartRow() []byte { return s.startRow }

// StopRow returns the exclusive stop row, nil meaning the table end.
func (s *Scan) StopRow() []byte { return s.stopRow }

// MaxVersions returns the per-column version limit.
func (s *Scan) MaxVersions() int { return s.maxVersions }

// Batch returns the per-fetch cell cap.
func (s *Scan) Batch() int { return s.batch }

// TimeRange returns the version time bounds.
func (s *Scan) TimeRange() TimeRange { return s.timeRange }

// HasFamilies reports whether the scan was narrowed to specific columns.
func (s *Scan) HasFamilies() bool { return !s.cols.isEmpty() }

// Columns returns the selection as "family" or "family:qualifier" strings in
// byte order, the shape the scanner spec is serialized from.
func (s *Scan) Columns() []string {
	var out []string
	for _, f := range s.cols.sortedFamilies() {
		quals, all := s.cols.qualifiers(f)
		if all {
			out = append(out, f)
			continue
		}
		for _, q := range quals {
			out = append(out, f+":"+string(q))
		}
	}
	return out
}
