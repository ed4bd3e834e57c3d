// Package format renders a computed (or externally-sourced) low/high pair
// into display-ready text.
// Format is independent of the computation engine on purpose: it accepts
// raw numbers so callers can format cached or stored estimates without
// recomputing. Like the rest of the core it never fails and holds no state,
// so formatting the same inputs twice always yields identical output.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"quote-pricing/core/types"
)

// Labels shown next to the money line.
const (
	LabelAssessmentOnly = "Assessment only"
	LabelEstimate       = "Estimate"
	LabelEstimateRange  = "Estimate range"
)

// printer renders whole-unit amounts with locale thousands separators.
// Printers are safe for concurrent use.
var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders a display triple for the given policy and low/high pair.
// Either side may be nil (unknown); both nil yields a nil money line.
func Format(policy types.PricingPolicy, low, high *int64) types.Display {
	switch effectiveMode(policy) {
	case types.DisplayAssessmentOnly:
		return types.Display{
			Mode:  string(types.DisplayAssessmentOnly),
			Label: LabelAssessmentOnly,
		}
	case types.DisplayFixed:
		return types.Display{
			Mode:      string(types.DisplayFixed),
			MoneyLine: fixedLine(low, high),
			Label:     LabelEstimate,
		}
	default:
		return types.Display{
			Mode:      string(types.DisplayRange),
			MoneyLine: rangeLine(low, high),
			Label:     LabelEstimateRange,
		}
	}
}

// effectiveMode re-derives the display mode the same way the normalizer
// does, so a caller that passes an unnormalized policy still gets safe
// behavior: disabled always suppresses, unrecognized modes fall back to
// range.
func effectiveMode(policy types.PricingPolicy) types.DisplayMode {
	if !policy.Enabled {
		return types.DisplayAssessmentOnly
	}
	switch policy.DisplayMode {
	case types.DisplayFixed:
		return types.DisplayFixed
	case types.DisplayAssessmentOnly:
		return types.DisplayAssessmentOnly
	default:
		return types.DisplayRange
	}
}

// fixedLine renders a single amount, preferring the low side.
func fixedLine(low, high *int64) *string {
	v := low
	if v == nil {
		v = high
	}
	if v == nil {
		return nil
	}
	s := Money(*v)
	return &s
}

// rangeLine renders "low – high", a single side when only one is present,
// or nil when neither is.
func rangeLine(low, high *int64) *string {
	var s string
	switch {
	case low != nil && high != nil:
		s = Money(*low) + " – " + Money(*high)
	case low != nil:
		s = Money(*low)
	case high != nil:
		s = Money(*high)
	default:
		return nil
	}
	return &s
}

// Money formats a whole-unit amount as a localized currency string with no
// decimal places, e.g. 1250 -> "$1,250".
func Money(amount int64) string {
	return printer.Sprintf("$%d", amount)
}
