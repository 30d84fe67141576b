package riskreward

import (
	"errors"
	"math"
)

// Inputs defines one risk/reward scenario.
// Units:
// - AvgPrice, MaxAgainstPrice, TargetPrice, TickSize: $ (instrument price)
// - NumLots, TotalLotsEntryExit: lots
// - TickValue, CostPerLot, RebatePerLot: $
type Inputs struct {
	AvgPrice           float64
	MaxAgainstPrice    float64
	TargetPrice        float64
	TickSize           float64
	NumLots            float64
	TickValue          float64
	TotalLotsEntryExit float64
	CostPerLot         float64
	RebatePerLot       float64
}

func (in Inputs) Validate() error {
	if in.TickSize == 0 {
		return errors.New("tick size cannot be zero")
	}
	return nil
}

// Result holds the net amounts. Both are signed: rebates larger than
// the price-movement risk make TotalRisk negative.
type Result struct {
	TotalRisk   float64
	TotalReward float64
}

// Breakdown exposes the intermediate components behind a Result.
// TransactionCost and RebateBenefit are shared between the risk and
// reward sides with opposite signs: cost adds to risk and subtracts
// from reward, rebate the reverse.
type Breakdown struct {
	RiskFromPrice   float64
	RewardFromPrice float64
	TransactionCost float64
	RebateBenefit   float64
	TotalRisk       float64
	TotalReward     float64
}

// Compute maps inputs to net risk and reward.
//
// Risk:   (|avg - maxAgainst| / tickSize) * lots * tickValue + cost - rebate
// Reward: (|avg - target|     / tickSize) * lots * tickValue - cost + rebate
//
// where cost = costPerLot * totalLotsEntryExit * 2 * lots and rebate is
// the same product over rebatePerLot. Callers must enforce
// TickSize != 0 (Validate) first.
func Compute(in Inputs) Result {
	b := ComputeBreakdown(in)
	return Result{TotalRisk: b.TotalRisk, TotalReward: b.TotalReward}
}

// ComputeBreakdown is Compute with the intermediate components kept.
func ComputeBreakdown(in Inputs) Breakdown {
	priceMovementRisk := math.Abs(in.AvgPrice-in.MaxAgainstPrice) / in.TickSize
	riskFromPrice := priceMovementRisk * in.NumLots * in.TickValue

	transactionCost := in.CostPerLot * in.TotalLotsEntryExit * 2 * in.NumLots
	rebateBenefit := in.RebatePerLot * in.TotalLotsEntryExit * 2 * in.NumLots

	priceMovementReward := math.Abs(in.AvgPrice-in.TargetPrice) / in.TickSize
	rewardFromPrice := priceMovementReward * in.NumLots * in.TickValue

	return Breakdown{
		RiskFromPrice:   riskFromPrice,
		RewardFromPrice: rewardFromPrice,
		TransactionCost: transactionCost,
		RebateBenefit:   rebateBenefit,
		TotalRisk:       riskFromPrice + transactionCost - rebateBenefit,
		TotalReward:     rewardFromPrice - transactionCost + rebateBenefit,
	}
}

// ProfitPercent returns reward as a percentage of risk. The second
// return is false when risk is not strictly positive.
func ProfitPercent(risk, reward float64) (float64, bool) {
	if risk <= 0 {
		return 0, false
	}
	return (reward / risk) * 100, true
}

// RiskPercentOfPosition returns risk as a percentage of the position's
// notional value (avgPrice * numLots). The second return is false when
// the position value is not strictly positive.
func RiskPercentOfPosition(risk, avgPrice, numLots float64) (float64, bool) {
	positionValue := avgPrice * numLots
	if positionValue <= 0 {
		return 0, false
	}
	return (risk / positionValue) * 100, true
}
