package models

// CalculateResponse represents the response from a calculation
type CalculateResponse struct {
	Status    string           `json:"status"`
	Summary   CalculateSummary `json:"summary"`
	Breakdown []BreakdownRow   `json:"breakdown,omitempty"`
}

// CalculateSummary contains the headline results, both raw and
// formatted for display.
type CalculateSummary struct {
	TotalRisk             float64 `json:"total_risk"`
	TotalReward           float64 `json:"total_reward"`
	TotalRiskDisplay      string  `json:"total_risk_display"`
	TotalRewardDisplay    string  `json:"total_reward_display"`
	Ratio                 string  `json:"ratio"`                 // "1:2.000" or "N/A"
	RatioValue            float64 `json:"ratio_value,omitempty"` // absent when risk is zero
	Delta                 string  `json:"delta"`                 // "Good" / "Poor" / "Bad" / "Risk is zero"
	Insight               string  `json:"insight"`               // excellent/good/moderate/poor/undefined
	Message               string  `json:"message"`
	ProfitPercent         float64 `json:"profit_percent,omitempty"`           // reward as % of risk
	RiskPercentOfPosition float64 `json:"risk_percent_of_position,omitempty"` // risk as % of notional
	Warning               string  `json:"warning,omitempty"`                  // set when risk is zero
}

// BreakdownRow is one line of the detailed breakdown table. Risk and
// Reward columns hold formatted currency or "-" where a component does
// not apply to that side.
type BreakdownRow struct {
	Component string `json:"component"`
	Risk      string `json:"risk"`
	Reward    string `json:"reward"`
}

// PresetInfo represents an instrument preset available to the form
type PresetInfo struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Inputs      PresetValues `json:"inputs"`
}

// PresetValues contains the pre-fill values for a preset
type PresetValues struct {
	AvgPrice           float64 `json:"avg_price,omitempty"`
	MaxAgainstPrice    float64 `json:"max_against_price,omitempty"`
	TargetPrice        float64 `json:"target_price,omitempty"`
	TickSize           float64 `json:"tick_size,omitempty"`
	NumLots            float64 `json:"num_lots,omitempty"`
	TickValue          float64 `json:"tick_value,omitempty"`
	TotalLotsEntryExit float64 `json:"total_lots_entry_exit,omitempty"`
	CostPerLot         float64 `json:"cost_per_lot,omitempty"`
	RebatePerLot       float64 `json:"rebate_per_lot,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
