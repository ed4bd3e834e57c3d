// Package hcl loads tenant pricing files for the CLI.
// A pricing file carries the same two records the persistence layer would
// supply: the raw policy row and the numeric pricing configuration. The
// policy block is deliberately kept loose (a raw map) so the core policy
// normalizer remains the single sanitization boundary.
package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"quote-pricing/core/types"
	"quote-pricing/internal/errors"
)

// TenantFile is the decoded content of a pricing file
type TenantFile struct {
	// Policy is the raw policy row, ready for policy.Normalize
	Policy map[string]any

	// Config is the tenant's pricing configuration (nil when the file
	// has no rates block)
	Config *types.PricingConfig
}

// Loader parses tenant pricing files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new pricing file loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// fileSchema mirrors the pricing file layout
type fileSchema struct {
	Policy *policyBlock `hcl:"policy,block"`
	Rates  *ratesBlock  `hcl:"rates,block"`
}

type policyBlock struct {
	PricingEnabled *bool   `hcl:"pricing_enabled,optional"`
	AIMode         *string `hcl:"ai_mode,optional"`
	PricingModel   *string `hcl:"pricing_model,optional"`
}

type ratesBlock struct {
	FlatRateDefault              *float64 `hcl:"flat_rate_default,optional"`
	HourlyLaborRate              *float64 `hcl:"hourly_labor_rate,optional"`
	MaterialMarkupPercent        *float64 `hcl:"material_markup_percent,optional"`
	PerUnitRate                  *float64 `hcl:"per_unit_rate,optional"`
	PerUnitLabel                 *string  `hcl:"per_unit_label,optional"`
	AssessmentFeeAmount          *float64 `hcl:"assessment_fee_amount,optional"`
	AssessmentFeeCreditTowardJob *bool    `hcl:"assessment_fee_credit_toward_job,optional"`
}

// Load parses a pricing file from disk
func (l *Loader) Load(path string) (*TenantFile, error) {
	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeParsing, "failed to parse pricing file", diags).
			WithContext("path", path)
	}
	return l.decode(file.Body, path)
}

// Parse parses pricing file source held in memory; filename is used only
// for diagnostics.
func (l *Loader) Parse(src []byte, filename string) (*TenantFile, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeParsing, "failed to parse pricing source", diags)
	}
	return l.decode(file.Body, filename)
}

func (l *Loader) decode(body hcl.Body, name string) (*TenantFile, error) {
	var schema fileSchema
	if diags := gohcl.DecodeBody(body, nil, &schema); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeParsing, "invalid pricing file structure", diags).
			WithContext("file", name)
	}

	out := &TenantFile{
		Policy: policyRow(schema.Policy),
	}
	if schema.Rates != nil {
		out.Config = pricingConfig(schema.Rates)
	}
	return out, nil
}

// policyRow rebuilds the loose row shape the normalizer expects. A file
// without a policy block yields an empty row, which normalizes to disabled.
func policyRow(b *policyBlock) map[string]any {
	row := map[string]any{}
	if b == nil {
		return row
	}
	if b.PricingEnabled != nil {
		row["pricing_enabled"] = *b.PricingEnabled
	}
	if b.AIMode != nil {
		row["ai_mode"] = *b.AIMode
	}
	if b.PricingModel != nil {
		row["pricing_model"] = *b.PricingModel
	}
	return row
}

func pricingConfig(b *ratesBlock) *types.PricingConfig {
	cfg := &types.PricingConfig{
		FlatRateDefault:       b.FlatRateDefault,
		HourlyLaborRate:       b.HourlyLaborRate,
		MaterialMarkupPercent: b.MaterialMarkupPercent,
		PerUnitRate:           b.PerUnitRate,
		AssessmentFeeAmount:   b.AssessmentFeeAmount,
	}
	if b.PerUnitLabel != nil {
		cfg.PerUnitLabel = *b.PerUnitLabel
	}
	if b.AssessmentFeeCreditTowardJob != nil {
		cfg.AssessmentFeeCreditTowardJob = *b.AssessmentFeeCreditTowardJob
	}
	return cfg
}

// Describe returns a short human summary for CLI output
func (f *TenantFile) Describe() string {
	rates := "no rates block"
	if f.Config != nil {
		rates = "rates configured"
	}
	return fmt.Sprintf("policy fields: %d, %s", len(f.Policy), rates)
}
