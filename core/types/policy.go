// Package types - Shared pricing value objects
// All types here are request-scoped values: constructed fresh per call,
// never mutated after construction, never owning resources.
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// DisplayMode governs whether an estimate is shown as a range, a single
// number, or suppressed entirely
type DisplayMode string

const (
	// DisplayRange shows a low–high money range
	DisplayRange DisplayMode = "range"

	// DisplayFixed collapses the range to a single representative number
	DisplayFixed DisplayMode = "fixed"

	// DisplayAssessmentOnly suppresses all dollar amounts
	DisplayAssessmentOnly DisplayMode = "assessment_only"
)

// PricingModel is the mutually-exclusive billing strategy a tenant selected
type PricingModel string

const (
	// ModelFlatPerJob charges a single flat amount per job
	ModelFlatPerJob PricingModel = "flat_per_job"

	// ModelHourlyPlusMaterials charges labor hours plus marked-up materials
	ModelHourlyPlusMaterials PricingModel = "hourly_plus_materials"

	// ModelPerUnit charges a rate per counted unit
	ModelPerUnit PricingModel = "per_unit"

	// ModelPackages charges from a package catalog (not yet implemented)
	ModelPackages PricingModel = "packages"

	// ModelLineItems charges from itemized line items (not yet implemented)
	ModelLineItems PricingModel = "line_items"

	// ModelInspectionOnly never produces a price
	ModelInspectionOnly PricingModel = "inspection_only"

	// ModelAssessmentFee charges like flat-per-job plus an informational fee
	ModelAssessmentFee PricingModel = "assessment_fee"

	// ModelNone means no model has been selected
	ModelNone PricingModel = ""
)

// String returns the string representation
func (m PricingModel) String() string {
	return string(m)
}

// PricingPolicy is a tenant's normalized pricing intent.
// Only the policy normalizer constructs these from raw storage rows;
// everything downstream trusts the invariants it enforces: when Enabled is
// false, DisplayMode is DisplayAssessmentOnly and Model is ModelNone.
type PricingPolicy struct {
	// Enabled is the master switch; when false no dollar amounts are produced
	Enabled bool `json:"pricing_enabled"`

	// DisplayMode selects range, fixed, or suppressed output
	DisplayMode DisplayMode `json:"display_mode"`

	// Model selects the computation branch (ModelNone if unset)
	Model PricingModel `json:"pricing_model,omitempty"`
}
