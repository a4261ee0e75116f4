package trend

import (
	"math"

	"github.com/peptiq/trendwatch/internal/domain/quality"
)

// suppliers returns distinct supplier names in first-appearance order, so
// detector output is deterministic for a given snapshot.
func suppliers(records []quality.TestRecord) []string {
	seen := make(map[string]bool, len(records))
	var out []string
	for _, r := range records {
		if !seen[r.Supplier] {
			seen[r.Supplier] = true
			out = append(out, r.Supplier)
		}
	}
	return out
}

// bySupplier filters the snapshot preserving its newest-first order.
func bySupplier(records []quality.TestRecord, supplier string) []quality.TestRecord {
	var out []quality.TestRecord
	for _, r := range records {
		if r.Supplier == supplier {
			out = append(out, r)
		}
	}
	return out
}

func peptides(records []quality.TestRecord) []quality.Peptide {
	seen := make(map[quality.Peptide]bool, len(records))
	var out []quality.Peptide
	for _, r := range records {
		if !seen[r.Peptide] {
			seen[r.Peptide] = true
			out = append(out, r.Peptide)
		}
	}
	return out
}

func byPeptide(records []quality.TestRecord, p quality.Peptide) []quality.TestRecord {
	var out []quality.TestRecord
	for _, r := range records {
		if r.Peptide == p {
			out = append(out, r)
		}
	}
	return out
}

// purities collects the present purity values; absent readings are skipped,
// never treated as zero.
func purities(records []quality.TestRecord) []float64 {
	var out []float64
	for _, r := range records {
		if r.Purity != nil {
			out = append(out, *r.Purity)
		}
	}
	return out
}

// meanPurity averages the present purities of a window. ok is false when the
// window holds no readings at all.
func meanPurity(records []quality.TestRecord) (float64, bool) {
	vals := purities(records)
	if len(vals) == 0 {
		return 0, false
	}
	return mean(vals), true
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stdDev is the sample standard deviation (n-1 divisor). Callers guarantee
// len(vals) >= 2.
func stdDev(vals []float64) float64 {
	m := mean(vals)
	var ss float64
	for _, v := range vals {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)-1))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
