package trend

import (
	"github.com/peptiq/trendwatch/internal/domain/quality"
)

const (
	marketMinRecords  = 5
	marketTrendWindow = 3
)

// AnalyzeMarketTrends classifies each peptide's purity direction by
// comparing the newest three records against the oldest three of the
// window. A strict tie counts as declining. Feeds the insight prompt only;
// trends never route alerts.
func AnalyzeMarketTrends(records []quality.TestRecord) map[quality.Peptide]quality.MarketTrend {
	trends := make(map[quality.Peptide]quality.MarketTrend)

	for _, p := range peptides(records) {
		recs := byPeptide(records, p)
		if len(recs) < marketMinRecords {
			continue
		}

		recent, rok := meanPurity(recs[:marketTrendWindow])
		older, ook := meanPurity(recs[len(recs)-marketTrendWindow:])
		vals := purities(recs)
		if !rok || !ook || len(vals) == 0 {
			continue
		}

		direction := quality.TrendDeclining
		if recent > older {
			direction = quality.TrendImproving
		}

		trends[p] = quality.MarketTrend{
			AvgPurity:   round1(mean(vals)),
			Trend:       direction,
			SampleCount: len(recs),
		}
	}

	return trends
}
