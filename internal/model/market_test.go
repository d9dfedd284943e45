package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func bars(prices []float64, skipDay int) []OHLCV {
	var out []OHLCV
	for i, p := range prices {
		if i == skipDay {
			continue
		}
		out = append(out, OHLCV{Time: day(i), Close: p, AdjClose: p, Volume: 1000})
	}
	return out
}

func TestNewPriceTable_DropsIncompleteRows(t *testing.T) {
	table := NewPriceTable([]string{"AAA", "BBB"}, map[string][]OHLCV{
		"AAA": bars([]float64{100, 101, 102, 103}, -1),
		"BBB": bars([]float64{50, 51, 52, 53}, 2), // day 2 missing
	})

	require.Equal(t, 3, table.Len())
	assert.Equal(t, []time.Time{day(0), day(1), day(3)}, table.Dates())

	col, ok := table.Column("AAA")
	require.True(t, ok)
	assert.Equal(t, []float64{100, 101, 103}, col)

	col, ok = table.Column("BBB")
	require.True(t, ok)
	assert.Equal(t, []float64{50, 51, 53}, col)

	assert.True(t, table.HasSymbol("AAA"))
	assert.False(t, table.HasSymbol("CCC"))
}

func TestReturnsTable(t *testing.T) {
	table := NewPriceTable([]string{"AAA"}, map[string][]OHLCV{
		"AAA": bars([]float64{100, 110, 99}, -1),
	})
	rets := table.Returns()

	require.Equal(t, 2, rets.Len())
	assert.Equal(t, []time.Time{day(1), day(2)}, rets.Dates())

	col, ok := rets.Column("AAA")
	require.True(t, ok)
	assert.InDelta(t, 0.10, col[0], 1e-12)
	assert.InDelta(t, -0.10, col[1], 1e-12)
}
