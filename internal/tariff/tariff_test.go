package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharge_KnownAmounts(t *testing.T) {
	tests := []struct {
		amount int
		want   int
	}{
		{amount: 1, want: 0},
		{amount: 100, want: 0},
		{amount: 101, want: 7},
		{amount: 5000, want: 55},
		{amount: 5001, want: 65},
		{amount: 50001, want: 108},
		{amount: 150000, want: 108},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Charge(tt.amount), "amount %d", tt.amount)
	}
}

func TestCharge_FreeBand(t *testing.T) {
	for a := 1; a <= 100; a++ {
		require.Zero(t, Charge(a), "amount %d", a)
	}
}

func TestCharge_TopBand(t *testing.T) {
	for a := 50001; a <= 150000; a++ {
		require.Equal(t, 108, Charge(a), "amount %d", a)
	}
}

func TestCharge_MonotonicNonDecreasing(t *testing.T) {
	prev := Charge(MinAmount)
	for a := MinAmount + 1; a <= MaxAmount; a++ {
		c := Charge(a)
		require.GreaterOrEqual(t, c, prev, "amount %d", a)
		prev = c
	}
}

func TestCharge_OutOfRangeIsSilentZero(t *testing.T) {
	assert.Zero(t, Charge(0))
	assert.Zero(t, Charge(-50))
	assert.Zero(t, Charge(150001))
}

func TestBands_ExactlyOneBandPerAmount(t *testing.T) {
	table := Bands()
	require.Len(t, table, 16)

	for a := MinAmount; a <= MaxAmount; a++ {
		matches := 0
		for _, b := range table {
			if b.Min <= a && a <= b.Max {
				matches++
			}
		}
		require.Equal(t, 1, matches, "amount %d", a)
	}
}

func TestBands_ReturnsCopy(t *testing.T) {
	table := Bands()
	table[0].Charge = 999
	assert.Zero(t, Charge(50))
	assert.Zero(t, Bands()[0].Charge)
}

func TestComputeBreakdown(t *testing.T) {
	got := ComputeBreakdown(5000)
	require.NotNil(t, got)
	assert.Equal(t, Breakdown{Amount: 5000, Charge: 55, Received: 4945, Percentage: "1.1"}, *got)

	got = ComputeBreakdown(50)
	require.NotNil(t, got)
	assert.Equal(t, Breakdown{Amount: 50, Charge: 0, Received: 50, Percentage: "0.0"}, *got)
}

func TestComputeBreakdown_PercentageRoundsHalfUp(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{amount: 112, want: "6.3"},
		{amount: 3440, want: "1.3"},
		{amount: 4400, want: "1.3"},
		{amount: 5200, want: "1.3"},
		{amount: 42400, want: "0.3"},
		{amount: 101, want: "6.9"},
		{amount: 150000, want: "0.1"},
	}

	for _, tt := range tests {
		got := ComputeBreakdown(tt.amount)
		require.NotNil(t, got)
		assert.Equal(t, tt.want, got.Percentage, "amount %d", tt.amount)
	}
}

func TestComputeBreakdown_Bounds(t *testing.T) {
	assert.Nil(t, ComputeBreakdown(0))
	assert.Nil(t, ComputeBreakdown(-1))
	assert.Nil(t, ComputeBreakdown(150001))
	assert.NotNil(t, ComputeBreakdown(1))
	assert.NotNil(t, ComputeBreakdown(150000))
}

func TestComputeBreakdown_ReceivedIsAmountMinusCharge(t *testing.T) {
	for a := MinAmount; a <= MaxAmount; a += 37 {
		b := ComputeBreakdown(a)
		require.NotNil(t, b)
		require.Equal(t, a-b.Charge, b.Received)
	}
}

func TestPercentage_ZeroAmount(t *testing.T) {
	assert.Equal(t, "0", percentage(0, 0))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Bands()))

	tests := []struct {
		name  string
		bands []Band
	}{
		{name: "empty", bands: nil},
		{name: "wrong start", bands: []Band{{Min: 2, Max: MaxAmount}}},
		{name: "wrong end", bands: []Band{{Min: 1, Max: 1000}}},
		{name: "gap", bands: []Band{{Min: 1, Max: 100}, {Min: 102, Max: MaxAmount}}},
		{name: "overlap", bands: []Band{{Min: 1, Max: 100}, {Min: 100, Max: MaxAmount}}},
		{name: "inverted", bands: []Band{{Min: 1, Max: 100}, {Min: 101, Max: 50}, {Min: 51, Max: MaxAmount}}},
		{name: "negative charge", bands: []Band{{Min: 1, Max: MaxAmount, Charge: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.bands))
		})
	}
}
