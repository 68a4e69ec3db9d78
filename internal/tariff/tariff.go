// Package tariff maps M-Pesa withdrawal amounts (whole KES) to the fixed
// transaction charge of their tariff band.
package tariff

import (
	"fmt"
	"strconv"
)

// Valid withdrawal range, inclusive.
const (
	MinAmount = 1
	MaxAmount = 150000
)

// Band is an inclusive amount range with a fixed charge.
type Band struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	Charge int `json:"charge"`
}

// Breakdown is the fee summary shown by the withdrawal calculator.
type Breakdown struct {
	Amount     int    `json:"amount"`
	Charge     int    `json:"charge"`
	Received   int    `json:"received"`
	Percentage string `json:"percentage"`
}

var bands = [...]Band{
	{Min: 1, Max: 100, Charge: 0},
	{Min: 101, Max: 500, Charge: 7},
	{Min: 501, Max: 1000, Charge: 13},
	{Min: 1001, Max: 1500, Charge: 23},
	{Min: 1501, Max: 2500, Charge: 33},
	{Min: 2501, Max: 3500, Charge: 43},
	{Min: 3501, Max: 5000, Charge: 55},
	{Min: 5001, Max: 7500, Charge: 65},
	{Min: 7501, Max: 10000, Charge: 75},
	{Min: 10001, Max: 15000, Charge: 85},
	{Min: 15001, Max: 20000, Charge: 95},
	{Min: 20001, Max: 25000, Charge: 100},
	{Min: 25001, Max: 30000, Charge: 103},
	{Min: 30001, Max: 35000, Charge: 105},
	{Min: 35001, Max: 50000, Charge: 106},
	{Min: 50001, Max: 150000, Charge: 108},
}

func init() {
	if err := Validate(bands[:]); err != nil {
		panic(fmt.Sprintf("tariff: invalid band table: %v", err))
	}
}

// Bands returns a copy of the tariff table in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands[:])
	return out
}

// Charge returns the charge of the band containing amount. Amounts outside
// every band cost nothing; use ComputeBreakdown to reject them instead.
func Charge(amount int) int {
	for _, b := range bands {
		if b.Min <= amount && amount <= b.Max {
			return b.Charge
		}
	}
	return 0
}

// ComputeBreakdown returns the fee breakdown for amount, or nil when amount is
// outside [MinAmount, MaxAmount].
func ComputeBreakdown(amount int) *Breakdown {
	if amount < MinAmount || amount > MaxAmount {
		return nil
	}

	charge := Charge(amount)
	return &Breakdown{
		Amount:     amount,
		Charge:     charge,
		Received:   amount - charge,
		Percentage: percentage(charge, amount),
	}
}

// percentage renders charge/amount as a percent with one decimal, rounding
// halves up. Integer arithmetic keeps ties such as 6.25 exact.
func percentage(charge, amount int) string {
	if amount == 0 {
		return "0"
	}
	tenths := (charge*2000 + amount) / (2 * amount)
	return strconv.Itoa(tenths/10) + "." + strconv.Itoa(tenths%10)
}

// Validate checks that bands are ordered, contiguous and exactly cover
// [MinAmount, MaxAmount].
func Validate(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("no bands")
	}
	if bands[0].Min != MinAmount {
		return fmt.Errorf("first band starts at %d, want %d", bands[0].Min, MinAmount)
	}
	for i, b := range bands {
		if b.Min > b.Max {
			return fmt.Errorf("band %d: min %d exceeds max %d", i, b.Min, b.Max)
		}
		if b.Charge < 0 {
			return fmt.Errorf("band %d: negative charge %d", i, b.Charge)
		}
		if i > 0 && b.Min != bands[i-1].Max+1 {
			return fmt.Errorf("band %d: starts at %d, previous ends at %d", i, b.Min, bands[i-1].Max)
		}
	}
	if last := bands[len(bands)-1]; last.Max != MaxAmount {
		return fmt.Errorf("last band ends at %d, want %d", last.Max, MaxAmount)
	}
	return nil
}
