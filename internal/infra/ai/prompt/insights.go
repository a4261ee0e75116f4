package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/peptiq/trendwatch/internal/domain/quality"
)

// maxItemsPerSection bounds each findings section so the prompt stays well
// inside the model's context regardless of how bad the week was.
const maxItemsPerSection = 5

// Build renders the weekly analyst prompt from one run's findings. Findings
// serialize as indented JSON so the model sees exact figures, not prose.
func Build(req quality.InsightRequest) string {
	return fmt.Sprintf(`You are a peptide quality analyst. Analyze this weekly quality data and provide actionable insights.

Summary:
- Total tests this week: %d
- Unique suppliers: %d
- Unique peptides: %d

Declining Suppliers (%d):
%s

Batch Variance Issues (%d):
%s

Safety Concerns (%d):
%s

Market Trends:
%s

Provide:
1. Three most urgent issues requiring immediate action
2. One emerging trend to watch
3. One specific recommendation for supplier outreach this week
4. One positive development or opportunity

Be concise. Focus on actionable intelligence.`,
		req.TotalTests,
		req.SupplierCount,
		req.PeptideCount,
		len(req.Declining), marshalHead(req.Declining, maxItemsPerSection),
		len(req.Variance), marshalHead(req.Variance, maxItemsPerSection),
		len(req.Safety), marshalHead(req.Safety, maxItemsPerSection),
		marshalTrends(req.Trends),
	)
}

func marshalHead[T any](items []T, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	if items == nil {
		items = []T{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(b)
}

func marshalTrends(trends map[quality.Peptide]quality.MarketTrend) string {
	if trends == nil {
		trends = map[quality.Peptide]quality.MarketTrend{}
	}
	b, err := json.MarshalIndent(trends, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
