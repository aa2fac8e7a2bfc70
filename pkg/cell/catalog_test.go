package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogCompareRows(t *testing.T) {
	t.Parallel()
	cmp := CatalogComparator{}

	tests := map[string]struct {
		left     string
		right    string
		expected int // sign of Compare
	}{
		"third segment decides once first two are equal": {
			left:     "ns,table,1234",
			right:    "ns,table,5678",
			expected: -1,
		},
		"first segment decides": {
			left:     "aa,table,9999",
			right:    "ab,table,0000",
			expected: -1,
		},
		"middle segment decides": {
			left:     "ns,alpha,9999",
			right:    "ns,beta,0000",
			expected: -1,
		},
		"identical composite rows": {
			left:     "ns,table,1234",
			right:    "ns,table,1234",
			expected: 0,
		},
		"no delimiter at all sorts after any delimited row": {
			left:     "ns",
			right:    "ns,table,1234",
			expected: 1,
		},
		"missing second delimiter sorts after": {
			left:     "ns,table",
			right:    "ns,table,1234",
			expected: 1,
		},
		"both missing delimiters fall back to plain order": {
			left:     "alpha",
			right:    "beta",
			expected: -1,
		},
		"segment-wise beats plain lexicographic": {
			// Plain byte order sorts the prefix "ns,ab" first; segment order
			// penalizes its missing delimiter instead.
			left:     "ns,ab,x",
			right:    "ns,ab",
			expected: -1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a := mustCell(t, tc.left, "f", "q", 1, TypePut)
			b := mustCell(t, tc.right, "f", "q", 1, TypePut)
			require.Equal(t, tc.expected, sign(cmp.CompareRows(a, b)))
			require.Equal(t, -tc.expected, sign(cmp.CompareRows(b, a)))
		})
	}
}

func TestCatalogCompareNonRowTerms(t *testing.T) {
	t.Parallel()
	cmp := CatalogComparator{}

	a := mustCell(t, "ns,table,1", "f", "q", 9, TypePut)
	b := mustCell(t, "ns,table,1", "f", "q", 1, TypePut)
	require.Negative(t, cmp.Compare(a, b), "newer timestamp sorts first")

	c := mustCell(t, "ns,table,1", "f", "qa", 1, TypePut)
	d := mustCell(t, "ns,table,1", "f", "qb", 1, TypePut)
	require.Negative(t, cmp.Compare(c, d))
}
