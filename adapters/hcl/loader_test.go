package hcl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-pricing/core/policy"
	"quote-pricing/core/types"
)

const sampleFile = `
policy {
  pricing_enabled = true
  ai_mode         = "range"
  pricing_model   = "hourly_plus_materials"
}

rates {
  hourly_labor_rate       = 80
  material_markup_percent = 20
  per_unit_label          = "window"
}
`

func TestParseFullFile(t *testing.T) {
	got, err := NewLoader().Parse([]byte(sampleFile), "pricing.hcl")
	require.NoError(t, err)

	p := policy.Normalize(got.Policy)
	assert.True(t, p.Enabled)
	assert.Equal(t, types.DisplayRange, p.DisplayMode)
	assert.Equal(t, types.ModelHourlyPlusMaterials, p.Model)

	require.NotNil(t, got.Config)
	require.NotNil(t, got.Config.HourlyLaborRate)
	assert.Equal(t, 80.0, *got.Config.HourlyLaborRate)
	require.NotNil(t, got.Config.MaterialMarkupPercent)
	assert.Equal(t, 20.0, *got.Config.MaterialMarkupPercent)
	assert.Equal(t, "window", got.Config.PerUnitLabel)
	assert.Nil(t, got.Config.PerUnitRate)
}

func TestParseEmptyFileNormalizesToDisabled(t *testing.T) {
	got, err := NewLoader().Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	assert.Nil(t, got.Config)

	p := policy.Normalize(got.Policy)
	assert.False(t, p.Enabled)
	assert.Equal(t, types.DisplayAssessmentOnly, p.DisplayMode)
}

func TestParseRejectsMalformedSource(t *testing.T) {
	_, err := NewLoader().Parse([]byte(`policy { pricing_enabled = `), "broken.hcl")
	assert.Error(t, err)
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pricing.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0644))

	got, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.NotNil(t, got.Config)

	_, err = NewLoader().Load(filepath.Join(dir, "missing.hcl"))
	assert.Error(t, err)
}
