package trend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peptiq/trendwatch/internal/application"
	"github.com/peptiq/trendwatch/internal/domain/quality"
)

// maxCriticalAlerts caps the high-priority message so a bad week does not
// flood the ops channel; the full picture lands in the insight brief.
const maxCriticalAlerts = 3

// Service implements the trend-detection run.
// One Run is a single sequential batch: fetch, detect, synthesize, alert.
type Service struct {
	Records  quality.RecordSource
	Insights quality.InsightGenerator
	Alerts   quality.AlertSink // nil disables alert delivery
	Clock    application.Clock
	Log      *zap.Logger
}

// RunResult is what one invocation produced.
type RunResult struct {
	RunID      string
	Total      int
	Declining  []quality.DeclineFinding
	Variance   []quality.VarianceFinding
	Safety     []quality.SafetyFinding
	Trends     map[quality.Peptide]quality.MarketTrend
	Insights   string
	DurationMS int64
}

// Run executes the full pipeline once. An empty window is a successful
// no-op: no detectors run and no external calls are made. Any failure from
// the insight service or the alert sink aborts the run; alerts already
// posted are not rolled back.
func (s *Service) Run(ctx context.Context, days int) (*RunResult, error) {
	started := s.Clock.Now()
	runID := uuid.New().String()
	log := s.Log.With(zap.String("run_id", runID))

	log.Info("running trend detection", zap.Int("lookback_days", days))

	records, err := s.Records.RecentCompleted(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("fetch recent tests: %w", err)
	}

	res := &RunResult{RunID: runID, Total: len(records)}
	if len(records) == 0 {
		log.Info("no recent tests found")
		res.DurationMS = s.Clock.Now().Sub(started).Milliseconds()
		return res, nil
	}

	res.Declining = DetectDecliningSuppliers(records)
	res.Variance = DetectBatchVariance(records)
	res.Safety = DetectSafetyConcerns(records)
	res.Trends = AnalyzeMarketTrends(records)

	insights, err := s.Insights.Generate(ctx, quality.InsightRequest{
		TotalTests:    len(records),
		SupplierCount: len(suppliers(records)),
		PeptideCount:  len(peptides(records)),
		Declining:     res.Declining,
		Variance:      res.Variance,
		Safety:        res.Safety,
		Trends:        res.Trends,
	})
	if err != nil {
		return nil, fmt.Errorf("generate insights: %w", err)
	}
	res.Insights = insights

	if err := s.dispatchAlerts(ctx, res); err != nil {
		return nil, fmt.Errorf("send alerts: %w", err)
	}

	res.DurationMS = s.Clock.Now().Sub(started).Milliseconds()
	log.Info("trend detection complete",
		zap.Int("tests", res.Total),
		zap.Int("declining", len(res.Declining)),
		zap.Int("variance", len(res.Variance)),
		zap.Int("safety", len(res.Safety)),
		zap.Int64("duration_ms", res.DurationMS),
		zap.String("insights_preview", preview(insights, 200)),
	)

	return res, nil
}

// dispatchAlerts partitions findings by severity and posts at most one
// high-priority message plus exactly one summary. Variance findings are
// never critical, so they only reach the summary counts via the brief.
func (s *Service) dispatchAlerts(ctx context.Context, res *RunResult) error {
	if s.Alerts == nil {
		return nil
	}

	var critical []quality.CriticalAlert
	for _, d := range res.Declining {
		if d.Severity == quality.SeverityCritical {
			critical = append(critical, quality.CriticalAlert{
				Supplier: d.Supplier,
				Concern:  fmt.Sprintf("Quality drop: %.1f%%", d.Drop),
			})
		}
	}
	for _, f := range res.Safety {
		if f.Severity == quality.SeverityCritical {
			critical = append(critical, quality.CriticalAlert{
				Supplier: f.Supplier,
				Concern:  f.Concerns[0],
			})
		}
	}

	if len(critical) > 0 {
		if len(critical) > maxCriticalAlerts {
			critical = critical[:maxCriticalAlerts]
		}
		if err := s.Alerts.PostCritical(ctx, critical); err != nil {
			return err
		}
	}

	return s.Alerts.PostSummary(ctx, quality.RunSummary{
		TotalTests: res.Total,
		Declining:  len(res.Declining),
		Safety:     len(res.Safety),
		Insights:   res.Insights,
	})
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
