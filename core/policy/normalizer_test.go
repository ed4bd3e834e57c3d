package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quote-pricing/core/types"
)

func TestNormalizeDisabledShortCircuits(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"nil row", nil},
		{"empty row", map[string]any{}},
		{"explicit false", map[string]any{"pricing_enabled": false}},
		{"zero number", map[string]any{"pricing_enabled": 0.0}},
		{"false string", map[string]any{"pricing_enabled": "false"}},
		{"f string", map[string]any{"pricing_enabled": "f"}},
		{"off string", map[string]any{"pricing_enabled": "off"}},
		{"nil value", map[string]any{"pricing_enabled": nil}},
		{"garbage type", map[string]any{"pricing_enabled": []string{"yes"}}},
		{
			// Mode and model must be forced even when the row carries values.
			"disabled with stored mode and model",
			map[string]any{
				"pricing_enabled": "no",
				"ai_mode":         "fixed",
				"pricing_model":   "per_unit",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			assert.False(t, got.Enabled)
			assert.Equal(t, types.DisplayAssessmentOnly, got.DisplayMode)
			assert.Equal(t, types.ModelNone, got.Model)
		})
	}
}

func TestNormalizeEnabledCoercions(t *testing.T) {
	for _, v := range []any{true, 1, int64(2), 3.5, "true", "t", "yes", "1", "enabled"} {
		got := Normalize(map[string]any{"pricing_enabled": v})
		assert.True(t, got.Enabled, "value %v should enable pricing", v)
	}
}

func TestNormalizeDisplayMode(t *testing.T) {
	tests := []struct {
		name string
		mode any
		want types.DisplayMode
	}{
		{"range", "range", types.DisplayRange},
		{"fixed", "fixed", types.DisplayFixed},
		{"assessment only", "assessment_only", types.DisplayAssessmentOnly},
		{"uppercase", "FIXED", types.DisplayFixed},
		{"padded", "  Range  ", types.DisplayRange},
		{"missing defaults to range", nil, types.DisplayRange},
		{"unknown defaults to range", "sparkline", types.DisplayRange},
		{"non-string defaults to range", 7, types.DisplayRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(map[string]any{
				"pricing_enabled": true,
				"ai_mode":         tt.mode,
			})
			assert.Equal(t, tt.want, got.DisplayMode)
		})
	}
}

func TestNormalizePricingModel(t *testing.T) {
	known := []types.PricingModel{
		types.ModelFlatPerJob, types.ModelHourlyPlusMaterials, types.ModelPerUnit,
		types.ModelPackages, types.ModelLineItems, types.ModelInspectionOnly,
		types.ModelAssessmentFee,
	}
	for _, m := range known {
		got := Normalize(map[string]any{
			"pricing_enabled": true,
			"pricing_model":   string(m),
		})
		assert.Equal(t, m, got.Model)
	}

	for _, v := range []any{nil, "", "subscription", 12, "FLAT_PER_JOB "} {
		got := Normalize(map[string]any{
			"pricing_enabled": true,
			"pricing_model":   v,
		})
		if s, ok := v.(string); ok && s == "FLAT_PER_JOB " {
			// Case and padding are tolerated for known members.
			assert.Equal(t, types.ModelFlatPerJob, got.Model)
			continue
		}
		assert.Equal(t, types.ModelNone, got.Model, "value %v should map to no model", v)
	}
}

func TestNormalizeNeverPanics(t *testing.T) {
	hostile := []map[string]any{
		{"pricing_enabled": map[string]any{"nested": true}},
		{"pricing_enabled": "yes", "ai_mode": []int{1, 2}, "pricing_model": struct{}{}},
		{"unrelated": "keys", "only": 42},
	}
	for _, raw := range hostile {
		assert.NotPanics(t, func() { Normalize(raw) })
	}
}
