// Package engine computes bounded, currency-safe estimates from a
// normalized policy, a tenant's pricing configuration, and the AI
// estimator's raw quantities.
// Compute is pure and total: it never fails, performs no I/O, and is safe
// to call concurrently. An unrecognized or unimplemented model must never
// surface a fabricated price, so every such case suppresses to zero while
// preserving the model name in the breakdown.
package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"quote-pricing/core/types"
)

// Suppression reasons reported by SuppressionReason.
const (
	ReasonDisabled       = "pricing_disabled"
	ReasonAssessmentOnly = "assessment_only"
	ReasonInspectionOnly = "inspection_only"
	ReasonUnimplemented  = "model_unimplemented"
	ReasonNoModel        = "model_unrecognized"
)

var hundred = decimal.NewFromInt(100)

// Compute resolves a policy, config, and component bundle into an Estimate.
// A nil config is treated as all-zero rates and fees.
func Compute(policy types.PricingPolicy, config *types.PricingConfig, components types.AIComponents) types.Estimate {
	currency := components.EffectiveCurrency()

	if _, suppressed := SuppressionReason(policy); suppressed {
		return zeroEstimate(policy.Model, currency)
	}
	if config == nil {
		config = &types.PricingConfig{}
	}

	breakdown := types.PricingBreakdown{
		Model:    policy.Model,
		Currency: currency,
	}

	var low, high decimal.Decimal
	switch policy.Model {
	case types.ModelHourlyPlusMaterials:
		low, high = computeHourly(config, components, &breakdown)
	case types.ModelPerUnit:
		low, high = computePerUnit(config, components, &breakdown)
	case types.ModelFlatPerJob:
		low, high = computeFlat(config, components, &breakdown)
	case types.ModelAssessmentFee:
		low, high = computeAssessmentFee(config, components, &breakdown)
	default:
		// Unknown model handed in without normalization: fail safe.
		return zeroEstimate(policy.Model, currency)
	}

	totalLow, totalHigh := money(low), money(high)
	if totalHigh < totalLow {
		totalLow, totalHigh = totalHigh, totalLow
	}
	if policy.DisplayMode == types.DisplayFixed {
		mid := midpoint(totalLow, totalHigh)
		totalLow, totalHigh = mid, mid
	}

	breakdown.TotalLow = totalLow
	breakdown.TotalHigh = totalHigh
	return types.Estimate{
		EstimateLow:  totalLow,
		EstimateHigh: totalHigh,
		Breakdown:    breakdown,
	}
}

// SuppressionReason reports whether the policy forbids producing a price
// and why. Packages and line items are recognized models that are not yet
// implemented; they suppress rather than fabricate.
func SuppressionReason(policy types.PricingPolicy) (string, bool) {
	switch {
	case !policy.Enabled:
		return ReasonDisabled, true
	case policy.DisplayMode == types.DisplayAssessmentOnly:
		return ReasonAssessmentOnly, true
	case policy.Model == types.ModelInspectionOnly:
		return ReasonInspectionOnly, true
	case policy.Model == types.ModelPackages, policy.Model == types.ModelLineItems:
		return ReasonUnimplemented, true
	case policy.Model == types.ModelNone:
		return ReasonNoModel, true
	}
	return "", false
}

func computeHourly(config *types.PricingConfig, c types.AIComponents, b *types.PricingBreakdown) (decimal.Decimal, decimal.Decimal) {
	hoursLow, hoursHigh := quantityPair(c.LaborHoursLow, c.LaborHoursHigh)
	rate := quantity(config.HourlyLaborRate)
	laborLow := hoursLow.Mul(rate)
	laborHigh := hoursHigh.Mul(rate)

	costLow, costHigh := quantityPair(c.MaterialsCostLow, c.MaterialsCostHigh)
	markup := quantity(config.MaterialMarkupPercent)
	factor := decimal.New(1, 0).Add(markup.Div(hundred))
	materialsLow := costLow.Mul(factor)
	materialsHigh := costHigh.Mul(factor)

	b.Labor = &types.LaborBreakdown{
		HoursLow:   hoursLow.InexactFloat64(),
		HoursHigh:  hoursHigh.InexactFloat64(),
		HourlyRate: rate.InexactFloat64(),
		TotalLow:   money(laborLow),
		TotalHigh:  money(laborHigh),
	}
	b.Materials = &types.MaterialsBreakdown{
		CostLow:       money(costLow),
		CostHigh:      money(costHigh),
		MarkupPercent: markup.InexactFloat64(),
		TotalLow:      money(materialsLow),
		TotalHigh:     money(materialsHigh),
	}
	return laborLow.Add(materialsLow), laborHigh.Add(materialsHigh)
}

func computePerUnit(config *types.PricingConfig, c types.AIComponents, b *types.PricingBreakdown) (decimal.Decimal, decimal.Decimal) {
	unitsLow, unitsHigh := quantityPair(c.UnitsLow, c.UnitsHigh)
	rate := quantity(config.PerUnitRate)
	low := unitsLow.Mul(rate)
	high := unitsHigh.Mul(rate)

	b.PerUnit = &types.PerUnitBreakdown{
		UnitsLow:  unitsLow.InexactFloat64(),
		UnitsHigh: unitsHigh.InexactFloat64(),
		Rate:      rate.InexactFloat64(),
		UnitLabel: config.PerUnitLabel,
		TotalLow:  money(low),
		TotalHigh: money(high),
	}
	return low, high
}

func computeFlat(config *types.PricingConfig, c types.AIComponents, b *types.PricingBreakdown) (decimal.Decimal, decimal.Decimal) {
	low, high := flatPair(config, c)
	b.Flat = &types.FlatBreakdown{
		TotalLow:  money(low),
		TotalHigh: money(high),
	}
	return low, high
}

func computeAssessmentFee(config *types.PricingConfig, c types.AIComponents, b *types.PricingBreakdown) (decimal.Decimal, decimal.Decimal) {
	// The job total is computed exactly like flat_per_job. The fee is
	// recorded for display but never summed into the total.
	low, high := flatPair(config, c)
	b.AssessmentFee = &types.AssessmentFeeBreakdown{
		JobTotalLow:     money(low),
		JobTotalHigh:    money(high),
		FeeAmount:       money(quantity(config.AssessmentFeeAmount)),
		CreditTowardJob: config.AssessmentFeeCreditTowardJob,
	}
	return low, high
}

// flatPair resolves the flat job total pair, falling back to the tenant's
// flat-rate default when the estimator supplied no flat total at all.
func flatPair(config *types.PricingConfig, c types.AIComponents) (decimal.Decimal, decimal.Decimal) {
	if c.FlatTotalLow == nil && c.FlatTotalHigh == nil {
		d := quantity(config.FlatRateDefault)
		return d, d
	}
	return quantityPair(c.FlatTotalLow, c.FlatTotalHigh)
}

// quantity coerces an optional numeric input: nil, NaN, and infinities
// become zero, negatives clamp to zero.
func quantity(v *float64) decimal.Decimal {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return decimal.Zero
	}
	d := decimal.NewFromFloat(*v)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// quantityPair coerces a low/high pair; an absent high defaults to the low.
func quantityPair(low, high *float64) (decimal.Decimal, decimal.Decimal) {
	l := quantity(low)
	if high == nil {
		return l, l
	}
	return l, quantity(high)
}

// money rounds a decimal amount to whole currency units. Output money never
// carries fractional cents.
func money(d decimal.Decimal) int64 {
	n := d.Round(0).IntPart()
	if n < 0 {
		return 0
	}
	return n
}

// midpoint is the rounded midpoint of an already-ordered whole-unit pair,
// used for the fixed-mode collapse.
func midpoint(low, high int64) int64 {
	sum := decimal.NewFromInt(low).Add(decimal.NewFromInt(high))
	return sum.Div(decimal.NewFromInt(2)).Round(0).IntPart()
}

func zeroEstimate(model types.PricingModel, currency types.Currency) types.Estimate {
	return types.Estimate{
		Breakdown: types.PricingBreakdown{
			Model:    model,
			Currency: currency,
		},
	}
}
