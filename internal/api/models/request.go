package models

// CalculateRequest represents the request body for running a
// risk/reward calculation. Input fields are strings on purpose: the
// boundary accepts exactly what the user typed and the form layer owns
// parsing, blank detection, and defaulting.
type CalculateRequest struct {
	// No binding:"required" here: an all-blank payload must reach the
	// form layer so the missing-field list can be reported.
	Inputs  InputsPayload    `json:"inputs"`
	Options CalculateOptions `json:"options,omitempty"`
}

// InputsPayload carries the nine calculator fields as raw strings.
// The first seven are required; cost and rebate default to "0".
type InputsPayload struct {
	AvgPrice           string `json:"avg_price"`
	MaxAgainstPrice    string `json:"max_against_price"`
	TargetPrice        string `json:"target_price"`
	TickSize           string `json:"tick_size"`
	NumLots            string `json:"num_lots"`
	TickValue          string `json:"tick_value"`
	TotalLotsEntryExit string `json:"total_lots_entry_exit"`
	CostPerLot         string `json:"cost_per_lot,omitempty"`
	RebatePerLot       string `json:"rebate_per_lot,omitempty"`
}

// CalculateOptions contains optional calculation parameters
type CalculateOptions struct {
	IncludeBreakdown bool `json:"include_breakdown,omitempty"` // default: false
}
