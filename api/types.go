// Package api - Request and response shapes
package api

import "quote-pricing/core/types"

// EstimateRequest is the body of POST /v1/estimate.
// Policy is accepted raw: the server normalizes it, so callers may forward
// their stored row without pre-cleaning.
type EstimateRequest struct {
	// Policy is the raw tenant policy row
	Policy map[string]any `json:"policy"`

	// Config is the tenant's pricing configuration (may be null)
	Config *types.PricingConfig `json:"config"`

	// Components is the AI estimator's quantity bundle
	Components types.AIComponents `json:"components"`
}

// EstimateResponse is the body of a successful POST /v1/estimate
type EstimateResponse struct {
	// RequestID identifies this computation for log correlation
	RequestID string `json:"request_id"`

	// Estimate is the bounded, currency-safe result
	Estimate types.Estimate `json:"estimate"`

	// Display is the formatted money line for the same estimate
	Display types.Display `json:"display"`

	// DurationMs is the server-side handling time
	DurationMs int64 `json:"duration_ms"`
}

// DisplayRequest is the body of POST /v1/display. It formats an
// externally-sourced low/high pair (e.g. a stored quote) without
// recomputing it.
type DisplayRequest struct {
	// Policy is the raw tenant policy row
	Policy map[string]any `json:"policy"`

	// EstimateLow is the stored low total (may be null)
	EstimateLow *int64 `json:"estimate_low"`

	// EstimateHigh is the stored high total (may be null)
	EstimateHigh *int64 `json:"estimate_high"`
}

// DisplayResponse is the body of a successful POST /v1/display
type DisplayResponse struct {
	// RequestID identifies this call for log correlation
	RequestID string `json:"request_id"`

	// Display is the formatted output
	Display types.Display `json:"display"`
}

// ErrorResponse is the body of any error response
type ErrorResponse struct {
	// Error describes what went wrong
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the error code and message
type ErrorDetail struct {
	// Code is a stable machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`

	// RequestID identifies the failed request
	RequestID string `json:"request_id,omitempty"`
}
