package trend

import (
	"fmt"

	"github.com/peptiq/trendwatch/internal/domain/quality"
)

const (
	endotoxinWarnLevel     = 1.0 // EU/mg
	endotoxinCriticalLevel = 2.0
	residualTFAWarnLevel   = 1.5 // percent
)

// DetectSafetyConcerns flags individual samples with elevated endotoxin or
// residual TFA. Checks combine through Severity.Max, so the TFA check can
// never downgrade an endotoxin CRITICAL on the same sample.
func DetectSafetyConcerns(records []quality.TestRecord) []quality.SafetyFinding {
	var issues []quality.SafetyFinding

	for _, rec := range records {
		var concerns []string
		severity := quality.SeverityInfo

		if rec.Endotoxin != nil && *rec.Endotoxin > endotoxinWarnLevel {
			concerns = append(concerns, fmt.Sprintf("High endotoxin: %g EU/mg", *rec.Endotoxin))
			if *rec.Endotoxin > endotoxinCriticalLevel {
				severity = severity.Max(quality.SeverityCritical)
			} else {
				severity = severity.Max(quality.SeverityWarning)
			}
		}

		if rec.ResidualTFA != nil && *rec.ResidualTFA > residualTFAWarnLevel {
			concerns = append(concerns, fmt.Sprintf("High residual TFA: %g%%", *rec.ResidualTFA))
			severity = severity.Max(quality.SeverityWarning)
		}

		if len(concerns) == 0 {
			continue
		}

		issues = append(issues, quality.SafetyFinding{
			TrackingID: rec.TrackingID,
			Supplier:   rec.Supplier,
			Peptide:    rec.Peptide,
			Concerns:   concerns,
			Severity:   severity,
		})
	}

	return issues
}
