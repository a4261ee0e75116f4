package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptiq/trendwatch/internal/domain/quality"
)

func TestAnalyzeMarketTrends_Improving(t *testing.T) {
	records := newestFirst("Acme", quality.PeptideBPC157, 99, 99, 99, 90, 90, 90)

	trends := AnalyzeMarketTrends(records)

	require.Contains(t, trends, quality.PeptideBPC157)
	tr := trends[quality.PeptideBPC157]
	assert.Equal(t, quality.TrendImproving, tr.Trend)
	assert.Equal(t, 94.5, tr.AvgPurity)
	assert.Equal(t, 6, tr.SampleCount)
}

func TestAnalyzeMarketTrends_Declining(t *testing.T) {
	records := newestFirst("Acme", quality.PeptideBPC157, 90, 90, 90, 99, 99, 99)

	trends := AnalyzeMarketTrends(records)

	require.Contains(t, trends, quality.PeptideBPC157)
	assert.Equal(t, quality.TrendDeclining, trends[quality.PeptideBPC157].Trend)
}

func TestAnalyzeMarketTrends_TieCountsAsDeclining(t *testing.T) {
	records := newestFirst("Acme", quality.PeptideBPC157, 95, 95, 95, 95, 95)

	trends := AnalyzeMarketTrends(records)

	require.Contains(t, trends, quality.PeptideBPC157)
	assert.Equal(t, quality.TrendDeclining, trends[quality.PeptideBPC157].Trend)
}

func TestAnalyzeMarketTrends_FewerThanFiveRecords(t *testing.T) {
	records := newestFirst("Acme", quality.PeptideBPC157, 99, 98, 97, 96)
	assert.Empty(t, AnalyzeMarketTrends(records))
}

func TestAnalyzeMarketTrends_GroupsByPeptide(t *testing.T) {
	records := append(
		newestFirst("Acme", quality.PeptideBPC157, 99, 99, 99, 90, 90, 90),
		newestFirst("Beta", quality.PeptideTB500, 90, 90, 90, 99, 99, 99)...,
	)

	trends := AnalyzeMarketTrends(records)

	require.Len(t, trends, 2)
	assert.Equal(t, quality.TrendImproving, trends[quality.PeptideBPC157].Trend)
	assert.Equal(t, quality.TrendDeclining, trends[quality.PeptideTB500].Trend)
}
