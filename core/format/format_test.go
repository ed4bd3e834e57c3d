package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-pricing/core/types"
)

func ip(v int64) *int64 { return &v }

func TestFormatAssessmentOnly(t *testing.T) {
	policy := types.PricingPolicy{Enabled: true, DisplayMode: types.DisplayAssessmentOnly}

	got := Format(policy, ip(280), ip(500))

	assert.Equal(t, "assessment_only", got.Mode)
	assert.Nil(t, got.MoneyLine)
	assert.Equal(t, LabelAssessmentOnly, got.Label)
}

func TestFormatDisabledOverridesMode(t *testing.T) {
	// A caller may hand back a raw, unnormalized policy; disabled still wins.
	policy := types.PricingPolicy{Enabled: false, DisplayMode: types.DisplayFixed}

	got := Format(policy, ip(390), ip(390))

	assert.Equal(t, "assessment_only", got.Mode)
	assert.Nil(t, got.MoneyLine)
}

func TestFormatRange(t *testing.T) {
	policy := types.PricingPolicy{Enabled: true, DisplayMode: types.DisplayRange}

	tests := []struct {
		name string
		low  *int64
		high *int64
		want *string
	}{
		{"both sides", ip(280), ip(500), strp("$280 – $500")},
		{"thousands separators", ip(1250), ip(12500), strp("$1,250 – $12,500")},
		{"low only", ip(280), nil, strp("$280")},
		{"high only", nil, ip(500), strp("$500")},
		{"neither", nil, nil, nil},
		{"zero is displayable", ip(0), ip(0), strp("$0 – $0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(policy, tt.low, tt.high)
			assert.Equal(t, "range", got.Mode)
			assert.Equal(t, LabelEstimateRange, got.Label)
			if tt.want == nil {
				assert.Nil(t, got.MoneyLine)
			} else {
				require.NotNil(t, got.MoneyLine)
				assert.Equal(t, *tt.want, *got.MoneyLine)
			}
		})
	}
}

func TestFormatFixed(t *testing.T) {
	policy := types.PricingPolicy{Enabled: true, DisplayMode: types.DisplayFixed}

	got := Format(policy, ip(390), ip(390))
	require.NotNil(t, got.MoneyLine)
	assert.Equal(t, "$390", *got.MoneyLine)
	assert.Equal(t, "fixed", got.Mode)
	assert.Equal(t, LabelEstimate, got.Label)

	// Low is preferred when the sides disagree.
	got = Format(policy, ip(100), ip(900))
	require.NotNil(t, got.MoneyLine)
	assert.Equal(t, "$100", *got.MoneyLine)

	// High is used when low is absent.
	got = Format(policy, nil, ip(900))
	require.NotNil(t, got.MoneyLine)
	assert.Equal(t, "$900", *got.MoneyLine)

	// Neither yields no money line but keeps the mode.
	got = Format(policy, nil, nil)
	assert.Nil(t, got.MoneyLine)
	assert.Equal(t, "fixed", got.Mode)
}

func TestFormatUnknownModeFallsBackToRange(t *testing.T) {
	policy := types.PricingPolicy{Enabled: true, DisplayMode: types.DisplayMode("marquee")}

	got := Format(policy, ip(10), ip(20))

	assert.Equal(t, "range", got.Mode)
	require.NotNil(t, got.MoneyLine)
	assert.Equal(t, "$10 – $20", *got.MoneyLine)
}

func TestFormatIsIdempotent(t *testing.T) {
	policy := types.PricingPolicy{Enabled: true, DisplayMode: types.DisplayRange}

	first := Format(policy, ip(280), ip(500))
	second := Format(policy, ip(280), ip(500))

	assert.Equal(t, first.Mode, second.Mode)
	assert.Equal(t, first.Label, second.Label)
	require.NotNil(t, first.MoneyLine)
	require.NotNil(t, second.MoneyLine)
	assert.Equal(t, *first.MoneyLine, *second.MoneyLine)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0", Money(0))
	assert.Equal(t, "$999", Money(999))
	assert.Equal(t, "$1,000", Money(1000))
	assert.Equal(t, "$1,234,567", Money(1234567))
}

func strp(s string) *string { return &s }
