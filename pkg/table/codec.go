package table

import (
	"io"

	"github.com/litetable/litetable-rest-client/pkg/cell"
)

//go:generate mockgen -destination=codec_mock.go -package=table -source=codec.go

// RowCells is one row of a decoded cell set.
type RowCells struct {
	Row   []byte
	Cells []*cell.Cell
}

// WireCodec translates between domain objects and the gateway's wire
// representation. Decoding consumes a stream directly: implementations must
// tolerate length-prefixed or chunked encodings of any size rather than
// imposing an artificial buffer ceiling — large scan batches depend on it.
type WireCodec interface {
	// ContentType is the MIME type sent as Accept and Content-Type.
	ContentType() string

	// EncodeCellSet serializes rows of cells for a Put.
	EncodeCellSet(rows []RowCells) ([]byte, error)

	// DecodeCellSet parses rows of cells from a response stream.
	DecodeCellSet(r io.Reader) ([]RowCells, error)

	// EncodeScanner serializes a scanner specification.
	EncodeScanner(s *Scan) ([]byte, error)

	// DecodeVersion parses the gateway version descriptor.
	DecodeVersion(r io.Reader) (string, error)

	// DecodeTableList parses the table name listing.
	DecodeTableList(r io.Reader) ([]string, error)
}
