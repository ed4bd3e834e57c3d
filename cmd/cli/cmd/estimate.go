// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pricingfile "quote-pricing/adapters/hcl"
	"quote-pricing/core/engine"
	"quote-pricing/core/format"
	"quote-pricing/core/policy"
	"quote-pricing/core/types"
	"quote-pricing/internal/logging"
)

var (
	pricingFile    string
	componentsFile string
	outputFormat   string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Compute an estimate for one job",
	Long: `Resolve a tenant pricing file and an AI component bundle into an
estimate.

The pricing file is HCL with a policy block and an optional rates block;
the components file is the estimator's JSON output. Malformed pricing
input never fails: it degrades to a suppressed zero estimate, exactly as
the server would respond.

Examples:
  quote-pricing estimate --pricing tenant.hcl --components job.json
  quote-pricing estimate --pricing tenant.hcl --components job.json --format json`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&pricingFile, "pricing", "p", "", "tenant pricing file (HCL)")
	estimateCmd.Flags().StringVarP(&componentsFile, "components", "c", "", "AI components file (JSON)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	estimateCmd.MarkFlagRequired("pricing")
	estimateCmd.MarkFlagRequired("components")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	tenant, err := pricingfile.NewLoader().Load(pricingFile)
	if err != nil {
		return err
	}

	components, err := loadComponents(componentsFile)
	if err != nil {
		return err
	}

	normalized := policy.Normalize(tenant.Policy)
	logging.Debug("policy normalized",
		zap.Bool("enabled", normalized.Enabled),
		zap.String("mode", string(normalized.DisplayMode)),
		zap.String("model", string(normalized.Model)),
	)

	est := engine.Compute(normalized, tenant.Config, components)
	display := format.Format(normalized, &est.EstimateLow, &est.EstimateHigh)

	if outputFormat == "json" {
		return printJSON(est, display)
	}
	printText(normalized, est, display)
	return nil
}

func loadComponents(path string) (types.AIComponents, error) {
	var components types.AIComponents
	data, err := os.ReadFile(path)
	if err != nil {
		return components, err
	}
	if err := json.Unmarshal(data, &components); err != nil {
		return components, fmt.Errorf("invalid components file %s: %w", path, err)
	}
	return components, nil
}

func printJSON(est types.Estimate, display types.Display) error {
	out := struct {
		Estimate types.Estimate `json:"estimate"`
		Display  types.Display  `json:"display"`
	}{est, display}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printText(p types.PricingPolicy, est types.Estimate, display types.Display) {
	fmt.Printf("Model:    %s\n", modelOrNone(p.Model))
	fmt.Printf("Mode:     %s\n", display.Mode)
	if display.MoneyLine != nil {
		fmt.Printf("%s: %s\n", display.Label, *display.MoneyLine)
	} else {
		fmt.Printf("%s\n", display.Label)
	}

	b := est.Breakdown
	if b.Labor != nil {
		fmt.Printf("  Labor:     %s – %s (%.1f–%.1f h)\n",
			format.Money(b.Labor.TotalLow), format.Money(b.Labor.TotalHigh),
			b.Labor.HoursLow, b.Labor.HoursHigh)
	}
	if b.Materials != nil {
		fmt.Printf("  Materials: %s – %s (markup %.0f%%)\n",
			format.Money(b.Materials.TotalLow), format.Money(b.Materials.TotalHigh),
			b.Materials.MarkupPercent)
	}
	if b.PerUnit != nil {
		label := b.PerUnit.UnitLabel
		if label == "" {
			label = "unit"
		}
		fmt.Printf("  Per %s: %s – %s (%.0f–%.0f units)\n", label,
			format.Money(b.PerUnit.TotalLow), format.Money(b.PerUnit.TotalHigh),
			b.PerUnit.UnitsLow, b.PerUnit.UnitsHigh)
	}
	if b.AssessmentFee != nil {
		credit := "not credited"
		if b.AssessmentFee.CreditTowardJob {
			credit = "credited toward job"
		}
		fmt.Printf("  Assessment fee: %s (%s)\n",
			format.Money(b.AssessmentFee.FeeAmount), credit)
	}
}

func modelOrNone(m types.PricingModel) string {
	if m == types.ModelNone {
		return "(none)"
	}
	return string(m)
}
