// Package types - Tenant pricing configuration
package types

import "encoding/json"

// PricingConfig holds a tenant's numeric pricing parameters.
// A tenant that never configured pricing has no row at all, so callers pass
// nil and the engine treats every rate and fee as zero. Individual fields are
// pointers because each may be unset independently.
type PricingConfig struct {
	// FlatRateDefault is the flat job price used when the estimator
	// supplies no flat total
	FlatRateDefault *float64 `json:"flat_rate_default,omitempty"`

	// HourlyLaborRate is the labor rate per hour
	HourlyLaborRate *float64 `json:"hourly_labor_rate,omitempty"`

	// MaterialMarkupPercent is the markup applied to materials cost
	MaterialMarkupPercent *float64 `json:"material_markup_percent,omitempty"`

	// PerUnitRate is the price per counted unit
	PerUnitRate *float64 `json:"per_unit_rate,omitempty"`

	// PerUnitLabel names the unit being counted (e.g. "window", "panel")
	PerUnitLabel string `json:"per_unit_label,omitempty"`

	// Packages is the tenant's package catalog, opaque to this core
	Packages json.RawMessage `json:"packages,omitempty"`

	// LineItems is the tenant's line-item structure, opaque to this core
	LineItems json.RawMessage `json:"line_items,omitempty"`

	// AssessmentFeeAmount is the up-front assessment fee
	AssessmentFeeAmount *float64 `json:"assessment_fee_amount,omitempty"`

	// AssessmentFeeCreditTowardJob indicates whether the fee credits
	// toward the final job total
	AssessmentFeeCreditTowardJob bool `json:"assessment_fee_credit_toward_job,omitempty"`
}
