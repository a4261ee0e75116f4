package quality

import "context"

// RecordSource port (interface for the test-record store)
type RecordSource interface {
	// RecentCompleted returns every completed record from the past N days,
	// newest first. Descending order is part of the contract: detectors take
	// positional windows off the head of the slice. An empty window returns
	// an empty slice, not an error.
	RecentCompleted(ctx context.Context, days int) ([]TestRecord, error)
}

// InsightGenerator port (interface for the text-generation service)
type InsightGenerator interface {
	Generate(ctx context.Context, req InsightRequest) (string, error)
}

// AlertSink port (interface for the ops notification channel)
type AlertSink interface {
	PostCritical(ctx context.Context, items []CriticalAlert) error
	PostSummary(ctx context.Context, sum RunSummary) error
}
