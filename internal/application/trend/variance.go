package trend

import (
	"github.com/peptiq/trendwatch/internal/domain/quality"
)

const (
	varianceMinRecords     = 3
	varianceRangeThreshold = 5.0
)

// DetectBatchVariance flags suppliers with high batch-to-batch purity
// spread across the whole window. Severity stays WARNING: inconsistency is
// an escalation path, not an incident on its own.
func DetectBatchVariance(records []quality.TestRecord) []quality.VarianceFinding {
	var issues []quality.VarianceFinding

	for _, supplier := range suppliers(records) {
		recs := bySupplier(records, supplier)
		if len(recs) < varianceMinRecords {
			continue
		}

		vals := purities(recs)
		if len(vals) < 2 {
			continue
		}

		lo, hi := vals[0], vals[0]
		for _, v := range vals[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}

		rng := hi - lo
		if rng <= varianceRangeThreshold {
			continue
		}

		issues = append(issues, quality.VarianceFinding{
			Supplier: supplier,
			Peptide:  recs[0].Peptide,
			Mean:     round1(mean(vals)),
			StdDev:   round1(stdDev(vals)),
			Range:    round1(rng),
			Batches:  len(recs),
			Severity: quality.SeverityWarning,
		})
	}

	return issues
}
