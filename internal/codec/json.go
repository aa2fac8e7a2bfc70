// Package codec implements the gateway's JSON wire representation of cell
// sets, scanner specifications, the version descriptor and the table listing.
// Byte-valued fields travel base64-encoded; a cell's column packs family and
// qualifier as "family:qualifier".
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/litetable/litetable-rest-client/pkg/cell"
	"github.com/litetable/litetable-rest-client/pkg/table"
)

const contentType = "application/json"

type cellModel struct {
	Column    []byte `json:"column"`
	Timestamp int64  `json:"timestamp"`
	Value     []byte `json:"$"`
}

type rowModel struct {
	Key   []byte      `json:"key"`
	Cells []cellModel `json:"Cell"`
}

type cellSetModel struct {
	Rows []rowModel `json:"Row"`
}

type scannerModel struct {
	StartRow    []byte   `json:"startRow,omitempty"`
	EndRow      []byte   `json:"endRow,omitempty"`
	Columns     [][]byte `json:"column,omitempty"`
	Batch       int      `json:"batch"`
	StartTime   int64    `json:"startTime,omitempty"`
	EndTime     int64    `json:"endTime,omitempty"`
	MaxVersions int      `json:"maxVersions"`
}

type versionModel struct {
	REST   string `json:"REST"`
	Server string `json:"Server"`
}

type tableModel struct {
	Name string `json:"name"`
}

type tableListModel struct {
	Tables []tableModel `json:"table"`
}

// JSON is the gateway JSON codec. Stateless; the zero value is ready to use.
type JSON struct{}

// ContentType returns the MIME type of the representation.
func (JSON) ContentType() string {
	return contentType
}

// EncodeCellSet serializes rows of cells for a Put.
func (JSON) EncodeCellSet(rows []table.RowCells) ([]byte, error) {
	model := cellSetModel{Rows: make([]rowModel, 0, len(rows))}
	for _, row := range rows {
		rm := rowModel{Key: row.Row, Cells: make([]cellModel, 0, len(row.Cells))}
		for _, c := range row.Cells {
			rm.Cells = append(rm.Cells, cellModel{
				Column:    packColumn(c.Family(), c.Qualifier()),
				Timestamp: c.Timestamp(),
				Value:     c.Value(),
			})
		}
		model.Rows = append(model.Rows, rm)
	}
	return json.Marshal(model)
}

// DecodeCellSet parses rows of cells from a response stream. The decoder
// consumes the stream directly so response size is bounded only by memory,
// never by a fixed buffer ceiling.
func (JSON) DecodeCellSet(r io.Reader) ([]table.RowCells, error) {
	var model cellSetModel
	if err := json.NewDecoder(r).Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding cell set: %w", err)
	}
	rows := make([]table.RowCells, 0, len(model.Rows))
	for _, rm := range model.Rows {
		row := table.RowCells{Row: rm.Key}
		for _, cm := range rm.Cells {
			family, qualifier := splitColumn(cm.Column)
			c, err := cell.New(rm.Key, family, qualifier, cm.Timestamp, cell.TypePut, cm.Value)
			if err != nil {
				return nil, fmt.Errorf("row %q: %w", rm.Key, err)
			}
			row.Cells = append(row.Cells, c)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// EncodeScanner serializes a scanner specification.
func (JSON) EncodeScanner(s *table.Scan) ([]byte, error) {
	model := scannerModel{
		StartRow:    s.StartRow(),
		EndRow:      s.StopRow(),
		Batch:       s.Batch(),
		MaxVersions: s.MaxVersions(),
	}
	for _, col := range s.Columns() {
		model.Columns = append(model.Columns, []byte(col))
	}
	if !s.TimeRange().IsAllTime() {
		model.StartTime = s.TimeRange().Min
		model.EndTime = s.TimeRange().Max
	}
	return json.Marshal(model)
}

// DecodeVersion parses the gateway version descriptor.
func (JSON) DecodeVersion(r io.Reader) (string, error) {
	var model versionModel
	if err := json.NewDecoder(r).Decode(&model); err != nil {
		return "", fmt.Errorf("decoding version: %w", err)
	}
	return model.REST, nil
}

// DecodeTableList parses the table name listing.
func (JSON) DecodeTableList(r io.Reader) ([]string, error) {
	var model tableListModel
	if err := json.NewDecoder(r).Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding table list: %w", err)
	}
	names := make([]string, 0, len(model.Tables))
	for _, t := range model.Tables {
		names = append(names, t.Name)
	}
	return names, nil
}

func packColumn(family, qualifier []byte) []byte {
	if len(qualifier) == 0 {
		return family
	}
	col := make([]byte, 0, len(family)+1+len(qualifier))
	col = append(col, family...)
	col = append(col, ':')
	return append(col, qualifier...)
}

func splitColumn(column []byte) (family, qualifier []byte) {
	if i := bytes.IndexByte(column, ':'); i >= 0 {
		return column[:i], column[i+1:]
	}
	return column, nil
}
