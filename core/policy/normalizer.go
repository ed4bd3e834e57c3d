// Package policy normalizes untrusted tenant pricing policy rows.
// This is the parse-and-validate boundary: nothing downstream ever sees the
// raw storage shape, and normalization never fails — malformed input
// degrades to the most conservative interpretation (assessment only, no
// model) rather than to an error.
package policy

import (
	"strconv"
	"strings"

	"quote-pricing/core/types"
)

// Raw field names as they appear in the tenant settings row.
const (
	fieldEnabled = "pricing_enabled"
	fieldMode    = "ai_mode"
	fieldModel   = "pricing_model"
)

// Normalize sanitizes an arbitrary policy record into a PricingPolicy.
// It accepts a loosely-typed row (typically a decoded JSON object or a
// map built from database columns) and tolerates nil maps, missing keys,
// and garbage values for every field.
func Normalize(raw map[string]any) types.PricingPolicy {
	if !truthy(raw[fieldEnabled]) {
		// Disabled short-circuits everything: mode and model are forced
		// regardless of what the row claims.
		return types.PricingPolicy{
			Enabled:     false,
			DisplayMode: types.DisplayAssessmentOnly,
			Model:       types.ModelNone,
		}
	}

	return types.PricingPolicy{
		Enabled:     true,
		DisplayMode: parseDisplayMode(raw[fieldMode]),
		Model:       parseModel(raw[fieldModel]),
	}
}

// parseDisplayMode parses the display mode from a small allow-list,
// defaulting to range when missing or unrecognized.
func parseDisplayMode(v any) types.DisplayMode {
	s, _ := v.(string)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(types.DisplayFixed):
		return types.DisplayFixed
	case string(types.DisplayAssessmentOnly):
		return types.DisplayAssessmentOnly
	default:
		return types.DisplayRange
	}
}

// parseModel parses the pricing model from the seven-member allow-list,
// defaulting to no model when missing or unrecognized.
func parseModel(v any) types.PricingModel {
	s, _ := v.(string)
	switch m := types.PricingModel(strings.ToLower(strings.TrimSpace(s))); m {
	case types.ModelFlatPerJob,
		types.ModelHourlyPlusMaterials,
		types.ModelPerUnit,
		types.ModelPackages,
		types.ModelLineItems,
		types.ModelInspectionOnly,
		types.ModelAssessmentFee:
		return m
	default:
		return types.ModelNone
	}
}

// truthy coerces a loosely-typed flag column to a boolean.
// Numbers are true when non-zero; strings are parsed leniently so the
// common row encodings ("t"/"f", "0"/"1", "yes"/"no") all behave; anything
// unparseable lands on false, which is the safe direction for a master
// pricing switch.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "", "0", "false", "f", "no", "off":
			return false
		default:
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return f != 0
			}
			return true
		}
	default:
		return false
	}
}
