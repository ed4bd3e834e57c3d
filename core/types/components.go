// Package types - AI estimator output
package types

// AIComponents is one estimation attempt from the upstream AI estimator.
// Every numeric field is untrusted: any may be absent, negative, or
// inverted, and the engine coerces rather than rejects. Narrative fields are
// passed through untouched and play no part in arithmetic.
type AIComponents struct {
	// Currency is the estimator's currency code (defaults to USD)
	Currency Currency `json:"currency,omitempty"`

	// Summary is the estimator's narrative description of the job
	Summary string `json:"summary,omitempty"`

	// Assumptions lists assumptions the estimator made
	Assumptions []string `json:"assumptions,omitempty"`

	// Questions lists clarifying questions for the customer
	Questions []string `json:"questions,omitempty"`

	// Confidence is the estimator's self-reported confidence (0..1)
	Confidence *float64 `json:"confidence,omitempty"`

	// InspectionRequired flags jobs the estimator could not price remotely
	InspectionRequired bool `json:"inspection_required,omitempty"`

	// LaborHoursLow is the low estimate of labor hours
	LaborHoursLow *float64 `json:"labor_hours_low,omitempty"`

	// LaborHoursHigh is the high estimate of labor hours
	LaborHoursHigh *float64 `json:"labor_hours_high,omitempty"`

	// MaterialsCostLow is the low estimate of raw materials cost
	MaterialsCostLow *float64 `json:"materials_cost_low,omitempty"`

	// MaterialsCostHigh is the high estimate of raw materials cost
	MaterialsCostHigh *float64 `json:"materials_cost_high,omitempty"`

	// UnitsLow is the low estimate of the unit count
	UnitsLow *float64 `json:"units_low,omitempty"`

	// UnitsHigh is the high estimate of the unit count
	UnitsHigh *float64 `json:"units_high,omitempty"`

	// FlatTotalLow is the low estimate of the flat job total
	FlatTotalLow *float64 `json:"flat_total_low,omitempty"`

	// FlatTotalHigh is the high estimate of the flat job total
	FlatTotalHigh *float64 `json:"flat_total_high,omitempty"`
}

// EffectiveCurrency returns the currency code, defaulting to USD
func (c AIComponents) EffectiveCurrency() Currency {
	if c.Currency == "" {
		return CurrencyUSD
	}
	return c.Currency
}
