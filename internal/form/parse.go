// Package form validates the raw string inputs collected by a UI and
// turns them into riskreward.Inputs. All failures are typed so the
// boundary layer can map them to user-facing messages; nothing here
// panics and nothing reaches the calculator unvalidated.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"risk-reward/internal/riskreward"
)

// Field labels as shown to the user. Error messages reference these.
const (
	FieldAvgPrice           = "Average Price"
	FieldMaxAgainstPrice    = "Max Against Price"
	FieldTargetPrice        = "Target Price"
	FieldTickSize           = "Tick Size"
	FieldNumLots            = "Number of Lots"
	FieldTickValue          = "Tick Value"
	FieldTotalLotsEntryExit = "Total Lots for Entry/Exit"
	FieldCostPerLot         = "Transaction Cost per Lot"
	FieldRebatePerLot       = "Rebate per Lot"
)

// RawInputs carries the nine fields exactly as entered. CostPerLot and
// RebatePerLot are optional and default to "0" when blank.
type RawInputs struct {
	AvgPrice           string
	MaxAgainstPrice    string
	TargetPrice        string
	TickSize           string
	NumLots            string
	TickValue          string
	TotalLotsEntryExit string
	CostPerLot         string
	RebatePerLot       string
}

// MissingFieldsError reports required fields left blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "please fill in the following required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidNumberError reports a field that failed to parse. Field is
// kept for logging; the message stays generic on purpose.
type InvalidNumberError struct {
	Field string
}

func (e *InvalidNumberError) Error() string {
	return "please enter valid numbers in all fields; check for any invalid characters"
}

// ZeroTickSizeError reports a tick size that parsed fine but equals
// zero, which would make the price-movement division undefined.
type ZeroTickSizeError struct{}

func (e *ZeroTickSizeError) Error() string {
	return "tick size cannot be zero"
}

// Parse trims and validates raw inputs. It checks required fields for
// emptiness first (collecting all missing names), then parses each
// value, then rejects a zero tick size.
func Parse(raw RawInputs) (riskreward.Inputs, error) {
	required := []struct {
		value string
		name  string
	}{
		{raw.AvgPrice, FieldAvgPrice},
		{raw.MaxAgainstPrice, FieldMaxAgainstPrice},
		{raw.TargetPrice, FieldTargetPrice},
		{raw.TickSize, FieldTickSize},
		{raw.NumLots, FieldNumLots},
		{raw.TickValue, FieldTickValue},
		{raw.TotalLotsEntryExit, FieldTotalLotsEntryExit},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return riskreward.Inputs{}, &MissingFieldsError{Fields: missing}
	}

	var in riskreward.Inputs
	var err error
	if in.AvgPrice, err = parseField(raw.AvgPrice, FieldAvgPrice); err != nil {
		return riskreward.Inputs{}, err
	}
	if in.MaxAgainstPrice, err = parseField(raw.MaxAgainstPrice, FieldMaxAgainstPrice); err != nil {
		return riskreward.Inputs{}, err
	}
	if in.TargetPrice, err = parseField(raw.TargetPrice, FieldTargetPrice); err != nil {
		return riskreward.Inputs{}, err
	}
	if in.TickSize, err = parseField(raw.TickSize, FieldTickSize); err != nil {
		return riskreward.Inputs{}, err
	}
	if in.NumLots, err = parseField(raw.NumLots, FieldNumLots); err != nil {
		return riskreward.Inputs{}, err
	}
	if in.TickValue, err = parseField(raw.TickValue, FieldTickValue); err != nil {
		return riskreward.Inputs{}, err
	}
	if in.TotalLotsEntryExit, err = parseField(raw.TotalLotsEntryExit, FieldTotalLotsEntryExit); err != nil {
		return riskreward.Inputs{}, err
	}
	if in.CostPerLot, err = parseOptional(raw.CostPerLot, FieldCostPerLot); err != nil {
		return riskreward.Inputs{}, err
	}
	if in.RebatePerLot, err = parseOptional(raw.RebatePerLot, FieldRebatePerLot); err != nil {
		return riskreward.Inputs{}, err
	}

	if in.TickSize == 0 {
		return riskreward.Inputs{}, &ZeroTickSizeError{}
	}
	return in, nil
}

func parseField(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &InvalidNumberError{Field: name}
	}
	return v, nil
}

// parseOptional treats blank as 0.
func parseOptional(s, name string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return parseField(s, name)
}

// Describe returns a short label for an input set, used in CLI output.
func Describe(in riskreward.Inputs) string {
	return fmt.Sprintf("%g lots @ %g (stop %g, target %g)",
		in.NumLots, in.AvgPrice, in.MaxAgainstPrice, in.TargetPrice)
}
