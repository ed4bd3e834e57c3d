// Package cmd - display command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	pricingfile "quote-pricing/adapters/hcl"
	"quote-pricing/core/format"
	"quote-pricing/core/policy"
)

var (
	displayPricingFile string
	displayLow         int64
	displayHigh        int64
)

// displayCmd represents the display command.
// It formats a stored low/high pair under a tenant's policy without
// recomputing anything, mirroring what the UI and email layers do.
var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Format a stored estimate for display",
	RunE: func(cmd *cobra.Command, args []string) error {
		tenant, err := pricingfile.NewLoader().Load(displayPricingFile)
		if err != nil {
			return err
		}

		var low, high *int64
		if cmd.Flags().Changed("low") {
			low = &displayLow
		}
		if cmd.Flags().Changed("high") {
			high = &displayHigh
		}

		d := format.Format(policy.Normalize(tenant.Policy), low, high)
		if d.MoneyLine != nil {
			fmt.Printf("%s: %s\n", d.Label, *d.MoneyLine)
		} else {
			fmt.Println(d.Label)
		}
		return nil
	},
}

func init() {
	displayCmd.Flags().StringVarP(&displayPricingFile, "pricing", "p", "", "tenant pricing file (HCL)")
	displayCmd.Flags().Int64Var(&displayLow, "low", 0, "stored low total")
	displayCmd.Flags().Int64Var(&displayHigh, "high", 0, "stored high total")
	displayCmd.MarkFlagRequired("pricing")
}
