package handlers

import (
	"errors"
	"net/http"

	"risk-reward/internal/analysis"
	"risk-reward/internal/api/models"
	"risk-reward/internal/form"
	"risk-reward/internal/riskreward"

	"github.com/gin-gonic/gin"
)

// CalculateHandler handles risk/reward calculation requests
type CalculateHandler struct{}

// NewCalculateHandler creates a new calculate handler
func NewCalculateHandler() *CalculateHandler {
	return &CalculateHandler{}
}

// RunCalculation handles POST /api/v1/calculate
func (h *CalculateHandler) RunCalculation(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	in, err := form.Parse(form.RawInputs{
		AvgPrice:           req.Inputs.AvgPrice,
		MaxAgainstPrice:    req.Inputs.MaxAgainstPrice,
		TargetPrice:        req.Inputs.TargetPrice,
		TickSize:           req.Inputs.TickSize,
		NumLots:            req.Inputs.NumLots,
		TickValue:          req.Inputs.TickValue,
		TotalLotsEntryExit: req.Inputs.TotalLotsEntryExit,
		CostPerLot:         req.Inputs.CostPerLot,
		RebatePerLot:       req.Inputs.RebatePerLot,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	b := riskreward.ComputeBreakdown(in)

	response := models.CalculateResponse{
		Status:  "completed",
		Summary: buildSummary(in, b),
	}
	if req.Options.IncludeBreakdown {
		response.Breakdown = buildBreakdownRows(b)
	}
	c.JSON(http.StatusOK, response)
}

// validationError maps the form layer's typed errors to API error
// codes. MissingFields carries the field list in details.
func validationError(err error) models.ErrorResponse {
	var missing *form.MissingFieldsError
	if errors.As(err, &missing) {
		return models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_FIELDS",
				Message: missing.Error(),
				Details: map[string]interface{}{
					"fields": missing.Fields,
				},
			},
		}
	}
	var invalid *form.InvalidNumberError
	if errors.As(err, &invalid) {
		return models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_NUMBER",
				Message: invalid.Error(),
			},
		}
	}
	var zeroTick *form.ZeroTickSizeError
	if errors.As(err, &zeroTick) {
		return models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ZERO_TICK_SIZE",
				Message: zeroTick.Error(),
			},
		}
	}
	return models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	}
}

func buildSummary(in riskreward.Inputs, b riskreward.Breakdown) models.CalculateSummary {
	risk, reward := b.TotalRisk, b.TotalReward

	summary := models.CalculateSummary{
		TotalRisk:          risk,
		TotalReward:        reward,
		TotalRiskDisplay:   riskreward.FormatCurrency(risk),
		TotalRewardDisplay: riskreward.FormatCurrency(reward),
		Ratio:              analysis.FormatRatio(risk, reward),
		Delta:              analysis.DeltaLabel(risk, reward),
		Insight:            string(analysis.Classify(risk, reward)),
	}

	ratio, ok := analysis.Ratio(risk, reward)
	if ok {
		summary.RatioValue = ratio
	}
	summary.Message = analysis.Classify(risk, reward).Message(ratio)
	if !ok {
		// Zero risk is a valid outcome, not an error; flag it so the UI
		// prompts the user to double-check their inputs.
		summary.Warning = "Risk is zero - please verify your inputs."
	}

	if pct, ok := riskreward.ProfitPercent(risk, reward); ok {
		summary.ProfitPercent = pct
	}
	if pct, ok := riskreward.RiskPercentOfPosition(risk, in.AvgPrice, in.NumLots); ok {
		summary.RiskPercentOfPosition = pct
	}
	return summary
}

// buildBreakdownRows mirrors the detailed breakdown table: one row per
// component, with "-" where a component does not apply to a side.
func buildBreakdownRows(b riskreward.Breakdown) []models.BreakdownRow {
	fc := riskreward.FormatCurrency
	return []models.BreakdownRow{
		{Component: "Price Movement (Risk)", Risk: fc(b.RiskFromPrice), Reward: "-"},
		{Component: "Price Movement (Reward)", Risk: "-", Reward: fc(b.RewardFromPrice)},
		{Component: "Transaction Costs", Risk: fc(b.TransactionCost), Reward: fc(-b.TransactionCost)},
		{Component: "Rebate Benefits", Risk: fc(-b.RebateBenefit), Reward: fc(b.RebateBenefit)},
		{Component: "Net Risk", Risk: fc(b.TotalRisk), Reward: "-"},
		{Component: "Net Reward", Risk: "-", Reward: fc(b.TotalReward)},
	}
}
