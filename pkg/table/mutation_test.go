package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/litetable/litetable-rest-client/pkg/cell"
)

func TestColumnSetOrdering(t *testing.T) {
	t.Parallel()
	cols := newColumnSet()
	cols.addColumn([]byte("zeta"), []byte("q2"))
	cols.addColumn([]byte("alpha"), []byte("q9"))
	cols.addColumn([]byte("zeta"), []byte("q1"))
	cols.addColumn([]byte("zeta"), []byte("q1")) // duplicate
	cols.addFamily([]byte("mid"))

	require.Equal(t, []string{"alpha", "mid", "zeta"}, cols.sortedFamilies())

	quals, all := cols.qualifiers("zeta")
	require.False(t, all)
	require.Equal(t, [][]byte{[]byte("q1"), []byte("q2")}, quals)

	_, all = cols.qualifiers("mid")
	require.True(t, all)

	_, ok := cols.qualifiers("absent")
	require.False(t, ok)
}

func TestColumnSetFamilySupersedesColumns(t *testing.T) {
	t.Parallel()
	cols := newColumnSet()
	cols.addColumn([]byte("f"), []byte("q1"))
	cols.addFamily([]byte("f"))
	cols.addColumn([]byte("f"), []byte("q2")) // no-op after whole family

	_, all := cols.qualifiers("f")
	require.True(t, all)
}

func TestGetBuilder(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		g := NewGet([]byte("r1"))
		require.Equal(t, []byte("r1"), g.Row())
		require.Equal(t, 1, g.MaxVersions())
		require.True(t, g.TimeRange().IsAllTime())
		require.False(t, g.HasFamilies())
	})

	t.Run("time range validation", func(t *testing.T) {
		t.Parallel()
		g := NewGet([]byte("r1"))
		_, err := g.SetTimeRange(10, 5)
		require.ErrorIs(t, err, errInvalidTimeRange)
		_, err = g.SetTimeRange(-1, 5)
		require.ErrorIs(t, err, errInvalidTimeRange)
		got, err := g.SetTimeRange(5, 10)
		require.NoError(t, err)
		require.Equal(t, TimeRange{Min: 5, Max: 10}, got.TimeRange())
	})

	t.Run("version validation", func(t *testing.T) {
		t.Parallel()
		g := NewGet([]byte("r1"))
		_, err := g.ReadVersions(0)
		require.ErrorIs(t, err, errInvalidVersions)
		got, err := g.ReadVersions(3)
		require.NoError(t, err)
		require.Equal(t, 3, got.MaxVersions())
	})
}

func TestScanRowPrefix(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		prefix        []byte
		expectedStart []byte
		expectedStop  []byte
	}{
		"simple":             {prefix: []byte("ab"), expectedStart: []byte("ab"), expectedStop: []byte("ac")},
		"trailing 0xff":      {prefix: []byte{'a', 0xff}, expectedStart: []byte{'a', 0xff}, expectedStop: []byte{'b'}},
		"all 0xff open ends": {prefix: []byte{0xff, 0xff}, expectedStart: []byte{0xff, 0xff}, expectedStop: nil},
		"empty clears both":  {prefix: nil, expectedStart: nil, expectedStop: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := NewScan().WithRowPrefix(tc.prefix)
			require.Equal(t, tc.expectedStart, s.StartRow())
			require.Equal(t, tc.expectedStop, s.StopRow())
		})
	}
}

func TestScanColumns(t *testing.T) {
	t.Parallel()
	s := NewScan().
		AddFamily([]byte("info")).
		AddColumn([]byte("data"), []byte("q2")).
		AddColumn([]byte("data"), []byte("q1"))
	require.Equal(t, []string{"data:q1", "data:q2", "info"}, s.Columns())
}

func TestPutBuilder(t *testing.T) {
	t.Parallel()

	t.Run("accumulates cells by family in byte order", func(t *testing.T) {
		t.Parallel()
		p, err := NewPutAt([]byte("r1"), 100)
		require.NoError(t, err)
		_, err = p.AddColumn([]byte("z"), []byte("q"), []byte("v1"))
		require.NoError(t, err)
		_, err = p.AddColumnAt([]byte("a"), []byte("q"), 7, []byte("v2"))
		require.NoError(t, err)

		cells := p.Cells()
		require.Len(t, cells, 2)
		require.Equal(t, []byte("a"), cells[0].Family())
		require.Equal(t, int64(7), cells[0].Timestamp())
		require.Equal(t, []byte("z"), cells[1].Family())
		require.Equal(t, int64(100), cells[1].Timestamp())
	})

	t.Run("rejects mismatched cell row", func(t *testing.T) {
		t.Parallel()
		p, err := NewPut([]byte("r1"))
		require.NoError(t, err)
		stray, err := cell.New([]byte("other"), []byte("f"), []byte("q"), 1, cell.TypePut, nil)
		require.NoError(t, err)
		require.ErrorIs(t, p.Add(stray), errRowMismatch)
	})

	t.Run("rejects invalid row", func(t *testing.T) {
		t.Parallel()
		_, err := NewPut(nil)
		require.Error(t, err)
	})
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	t.Run("marker types", func(t *testing.T) {
		t.Parallel()
		d, err := NewDeleteAt([]byte("r1"), 50)
		require.NoError(t, err)
		_, err = d.AddColumn([]byte("f"), []byte("q"))
		require.NoError(t, err)

		cells := d.Cells()
		require.Len(t, cells, 1)
		require.Equal(t, cell.TypeDelete, cells[0].Type())
		require.Equal(t, int64(50), cells[0].Timestamp())
	})

	t.Run("family marker supersedes column markers", func(t *testing.T) {
		t.Parallel()
		d, err := NewDelete([]byte("r1"))
		require.NoError(t, err)
		_, err = d.AddColumns([]byte("f"), []byte("q"))
		require.NoError(t, err)
		_, err = d.AddFamily([]byte("f"))
		require.NoError(t, err)

		cells := d.Cells()
		require.Len(t, cells, 1)
		require.Equal(t, cell.TypeDeleteFamily, cells[0].Type())
	})

	t.Run("empty delete targets whole row", func(t *testing.T) {
		t.Parallel()
		d, err := NewDelete([]byte("r1"))
		require.NoError(t, err)
		require.True(t, d.IsEmpty())
	})
}
