package bytesutil

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidRange signals a range whose end does not sort after its start, or
// a non-positive split count.
var ErrInvalidRange = errors.New("invalid range")

// SplitRange divides the key range [start, end] into numSplits+1 numerically
// equal parts and returns the numSplits+2 boundary keys, the first being start
// and the last being end. Both keys are treated as big-endian unsigned
// integers, zero-padded to equal length and prefixed with a sign-safe byte.
// When inclusiveEnd is set the end key itself counts as part of the span.
//
// If the numeric span is smaller than the requested split count, both keys are
// padded with one extra trailing zero byte and the split is retried; the
// padding widens the representable span without disturbing the ordering.
func SplitRange(start, end []byte, numSplits int, inclusiveEnd bool) ([][]byte, error) {
	if numSplits <= 0 {
		return nil, fmt.Errorf("%w: numSplits must be positive, got %d", ErrInvalidRange, numSplits)
	}

	a, b := start, end
	if len(a) < len(b) {
		a = PadTail(a, len(b)-len(a))
	} else if len(b) < len(a) {
		b = PadTail(b, len(a)-len(b))
	}
	if Compare(a, b) >= 0 {
		return nil, fmt.Errorf("%w: end must sort after start", ErrInvalidRange)
	}

	// The {1, 0} prefix keeps the most significant key byte from being read
	// as a two's-complement sign bit.
	prefix := []byte{1, 0}
	startBI := new(big.Int).SetBytes(append(append([]byte{}, prefix...), a...))
	stopBI := new(big.Int).SetBytes(append(append([]byte{}, prefix...), b...))

	diff := new(big.Int).Sub(stopBI, startBI)
	if inclusiveEnd {
		diff.Add(diff, big.NewInt(1))
	}
	splits := big.NewInt(int64(numSplits) + 1)
	if diff.Cmp(splits) < 0 {
		return SplitRange(PadTail(a, 1), PadTail(b, 1), numSplits, inclusiveEnd)
	}
	interval := new(big.Int).Div(diff, splits)

	width := len(a)
	boundaries := make([][]byte, 0, numSplits+2)
	boundaries = append(boundaries, start)
	for i := 1; i <= numSplits; i++ {
		cur := new(big.Int).Add(startBI, new(big.Int).Mul(interval, big.NewInt(int64(i))))
		boundaries = append(boundaries, trimToWidth(cur.Bytes(), width))
	}
	boundaries = append(boundaries, end)
	return boundaries, nil
}

// trimToWidth strips the sign-safe prefix from a big-endian encoding, restoring
// leading zero bytes the big-integer representation dropped.
func trimToWidth(raw []byte, width int) []byte {
	if len(raw) >= width {
		return raw[len(raw)-width:]
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out
}
