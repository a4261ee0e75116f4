package trend

import (
	"fmt"
	"time"

	"github.com/peptiq/trendwatch/internal/domain/quality"
)

func fp(v float64) *float64 { return &v }

// newestFirst builds one supplier's records in snapshot order: the first
// purity is the most recent test, each following one is an hour older.
func newestFirst(supplier string, peptide quality.Peptide, purities ...float64) []quality.TestRecord {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	out := make([]quality.TestRecord, 0, len(purities))
	for i, p := range purities {
		out = append(out, quality.TestRecord{
			ID:         fmt.Sprintf("%s-%d", supplier, i),
			TrackingID: fmt.Sprintf("PTQ-2026-%s-%03d", supplier, i),
			Peptide:    peptide,
			Supplier:   supplier,
			Purity:     fp(p),
			CreatedAt:  now.Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}
