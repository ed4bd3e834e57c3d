// Package types - Estimate and breakdown types
package types

// LaborBreakdown accounts for the labor portion of an hourly estimate
type LaborBreakdown struct {
	// HoursLow is the coerced low labor-hours input
	HoursLow float64 `json:"hours_low"`

	// HoursHigh is the coerced high labor-hours input
	HoursHigh float64 `json:"hours_high"`

	// HourlyRate is the tenant's labor rate applied
	HourlyRate float64 `json:"hourly_rate"`

	// TotalLow is the low labor subtotal in whole currency units
	TotalLow int64 `json:"total_low"`

	// TotalHigh is the high labor subtotal in whole currency units
	TotalHigh int64 `json:"total_high"`
}

// MaterialsBreakdown accounts for the materials portion of an hourly estimate
type MaterialsBreakdown struct {
	// CostLow is the low raw materials cost in whole currency units
	CostLow int64 `json:"cost_low"`

	// CostHigh is the high raw materials cost in whole currency units
	CostHigh int64 `json:"cost_high"`

	// MarkupPercent is the tenant's materials markup applied
	MarkupPercent float64 `json:"markup_percent"`

	// TotalLow is the low marked-up subtotal in whole currency units
	TotalLow int64 `json:"total_low"`

	// TotalHigh is the high marked-up subtotal in whole currency units
	TotalHigh int64 `json:"total_high"`
}

// PerUnitBreakdown accounts for a per-unit estimate
type PerUnitBreakdown struct {
	// UnitsLow is the coerced low unit count
	UnitsLow float64 `json:"units_low"`

	// UnitsHigh is the coerced high unit count
	UnitsHigh float64 `json:"units_high"`

	// Rate is the tenant's per-unit rate applied
	Rate float64 `json:"rate"`

	// UnitLabel names the unit being counted
	UnitLabel string `json:"unit_label,omitempty"`

	// TotalLow is the low subtotal in whole currency units
	TotalLow int64 `json:"total_low"`

	// TotalHigh is the high subtotal in whole currency units
	TotalHigh int64 `json:"total_high"`
}

// FlatBreakdown accounts for a flat-per-job estimate
type FlatBreakdown struct {
	// TotalLow is the low flat total in whole currency units
	TotalLow int64 `json:"total_low"`

	// TotalHigh is the high flat total in whole currency units
	TotalHigh int64 `json:"total_high"`
}

// AssessmentFeeBreakdown accounts for an assessment-fee estimate.
// Invariant: FeeAmount is informational only and is never summed into the
// grand total — the job total alone drives total_low/total_high.
type AssessmentFeeBreakdown struct {
	// JobTotalLow is the low job total in whole currency units
	JobTotalLow int64 `json:"job_total_low"`

	// JobTotalHigh is the high job total in whole currency units
	JobTotalHigh int64 `json:"job_total_high"`

	// FeeAmount is the up-front assessment fee in whole currency units
	FeeAmount int64 `json:"fee_amount"`

	// CreditTowardJob indicates whether the fee credits toward the job
	CreditTowardJob bool `json:"credit_toward_job"`
}

// PricingBreakdown is the structured accounting of how a total was derived.
// Exactly one sub-structure is set, matching the selected model; suppressed
// estimates carry none. Sub-structure values are recorded per side as
// received (after coercion) and are NOT re-sorted: only the grand total is
// ordered, so a malformed upstream inversion stays visible here for
// diagnostics while the total stays consistent.
type PricingBreakdown struct {
	// Model is the selected pricing model, preserved even when the
	// estimate was suppressed
	Model PricingModel `json:"model,omitempty"`

	// Currency is the estimate currency
	Currency Currency `json:"currency"`

	// Labor is set for hourly_plus_materials
	Labor *LaborBreakdown `json:"labor,omitempty"`

	// Materials is set for hourly_plus_materials
	Materials *MaterialsBreakdown `json:"materials,omitempty"`

	// PerUnit is set for per_unit
	PerUnit *PerUnitBreakdown `json:"per_unit,omitempty"`

	// Flat is set for flat_per_job
	Flat *FlatBreakdown `json:"flat,omitempty"`

	// AssessmentFee is set for assessment_fee
	AssessmentFee *AssessmentFeeBreakdown `json:"assessment_fee,omitempty"`

	// TotalLow is the final low total in whole currency units (low <= high)
	TotalLow int64 `json:"total_low"`

	// TotalHigh is the final high total in whole currency units
	TotalHigh int64 `json:"total_high"`
}

// Estimate is the computation engine's result
type Estimate struct {
	// EstimateLow is the final low total in whole currency units
	EstimateLow int64 `json:"estimate_low"`

	// EstimateHigh is the final high total in whole currency units
	EstimateHigh int64 `json:"estimate_high"`

	// Breakdown is the per-category accounting behind the totals
	Breakdown PricingBreakdown `json:"breakdown"`
}

// Display is the formatter's display-ready output, consumed directly by
// UI and email templates and never re-parsed
type Display struct {
	// Mode is the effective display mode (range, fixed, assessment_only)
	Mode string `json:"mode"`

	// MoneyLine is the formatted money text, nil when suppressed or when
	// no amount is available
	MoneyLine *string `json:"money_line"`

	// Label is the human-readable caption for the money line
	Label string `json:"label"`
}
