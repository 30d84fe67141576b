package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() RawInputs {
	return RawInputs{
		AvgPrice:           "0.008",
		MaxAgainstPrice:    "0.006",
		TargetPrice:        "0.012",
		TickSize:           "0.001",
		NumLots:            "10",
		TickValue:          "1",
		TotalLotsEntryExit: "10",
	}
}

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	in, err := Parse(validRaw())
	require.NoError(t, err)

	assert.InDelta(t, 0.008, in.AvgPrice, 1e-12)
	assert.InDelta(t, 0.001, in.TickSize, 1e-12)
	assert.InDelta(t, 10, in.NumLots, 1e-12)
	// blank optional fields default to 0
	assert.Zero(t, in.CostPerLot)
	assert.Zero(t, in.RebatePerLot)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.AvgPrice = "  0.008 "
	raw.CostPerLot = " 0.25 "

	in, err := Parse(raw)
	require.NoError(t, err)
	assert.InDelta(t, 0.008, in.AvgPrice, 1e-12)
	assert.InDelta(t, 0.25, in.CostPerLot, 1e-12)
}

func TestParse_MissingFields(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.AvgPrice = ""
	raw.TickSize = "   "

	_, err := Parse(raw)
	require.Error(t, err)

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{FieldAvgPrice, FieldTickSize}, missing.Fields)
	assert.Contains(t, missing.Error(), FieldAvgPrice)
	assert.Contains(t, missing.Error(), FieldTickSize)
}

func TestParse_OptionalFieldsNotRequired(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.CostPerLot = ""
	raw.RebatePerLot = ""

	_, err := Parse(raw)
	assert.NoError(t, err)
}

func TestParse_InvalidNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*RawInputs)
	}{
		{"letters in required field", func(r *RawInputs) { r.NumLots = "ten" }},
		{"garbage in price", func(r *RawInputs) { r.AvgPrice = "0.0.8" }},
		{"letters in optional field", func(r *RawInputs) { r.RebatePerLot = "abc" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := validRaw()
			tt.mutate(&raw)

			_, err := Parse(raw)
			require.Error(t, err)

			var invalid *InvalidNumberError
			require.ErrorAs(t, err, &invalid)
			// message stays generic regardless of which field failed
			assert.Contains(t, invalid.Error(), "valid numbers")
		})
	}
}

func TestParse_ZeroTickSize(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.TickSize = "0"

	_, err := Parse(raw)
	require.Error(t, err)

	var zeroTick *ZeroTickSizeError
	require.ErrorAs(t, err, &zeroTick)

	// distinct from the generic parse failure
	var invalid *InvalidNumberError
	assert.False(t, errors.As(err, &invalid))
	assert.Contains(t, err.Error(), "tick size")
}

func TestParse_NegativeValuesAllowed(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.AvgPrice = "-0.008"
	raw.TickSize = "-0.001"
	raw.NumLots = "-10"

	_, err := Parse(raw)
	assert.NoError(t, err)
}

func TestParse_MissingCheckedBeforeParse(t *testing.T) {
	t.Parallel()

	// blank required field wins over an unparseable one
	raw := validRaw()
	raw.AvgPrice = ""
	raw.NumLots = "ten"

	_, err := Parse(raw)
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
}
