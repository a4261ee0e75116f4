package trend

import (
	"github.com/peptiq/trendwatch/internal/domain/quality"
)

const (
	declineMinRecords        = 4
	declineDropThreshold     = 2.0
	declineCriticalThreshold = 5.0
	declineWindow            = 3
)

// DetectDecliningSuppliers flags suppliers whose latest purity readings fall
// meaningfully below the preceding window. The snapshot must be newest
// first: the recent window is the head of each supplier's subsequence and
// the previous window is positions [3,6).
func DetectDecliningSuppliers(records []quality.TestRecord) []quality.DeclineFinding {
	var declining []quality.DeclineFinding

	for _, supplier := range suppliers(records) {
		recs := bySupplier(records, supplier)
		if len(recs) < declineMinRecords {
			continue
		}

		recent, ok := meanPurity(recs[:declineWindow])
		if !ok {
			continue
		}
		previous, ok := meanPurity(recs[declineWindow:min(2*declineWindow, len(recs))])
		if !ok {
			continue
		}

		drop := previous - recent
		if drop <= declineDropThreshold {
			continue
		}

		severity := quality.SeverityWarning
		if drop > declineCriticalThreshold {
			severity = quality.SeverityCritical
		}

		declining = append(declining, quality.DeclineFinding{
			Supplier:    supplier,
			Peptide:     recs[0].Peptide,
			PreviousAvg: round1(previous),
			RecentAvg:   round1(recent),
			Drop:        round1(drop),
			SampleCount: len(recs),
			Severity:    severity,
		})
	}

	return declining
}
