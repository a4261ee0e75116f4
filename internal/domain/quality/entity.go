package quality

import (
	"time"
)

// Peptide enum (catalogue codes from the testing service)
type Peptide string

const (
	PeptideBPC157      Peptide = "BPC157"
	PeptideTB500       Peptide = "TB500"
	PeptideSemaglutide Peptide = "SEMAGLUTIDE"
	PeptideTirzepatide Peptide = "TIRZEPATIDE"
	PeptideGHKCu       Peptide = "GHKCU"
	PeptideNAD         Peptide = "NAD"
	PeptideOther       Peptide = "OTHER"
)

// Sample lifecycle status. Only completed samples are visible to the
// detection pipeline; the source query filters on this, detectors never do.
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Trend direction for a peptide's recent purity movement.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
)

// TestRecord is one completed lab test. Optional measurements are pointers:
// nil means the lab did not report that value, and each detector skips the
// statistic rather than failing. Records are immutable for the life of a run.
type TestRecord struct {
	ID               string
	TrackingID       string
	Peptide          Peptide
	Supplier         string
	Purity           *float64
	Endotoxin        *float64
	ResidualTFA      *float64
	CreatedAt        time.Time
	AIGrade          string
	SupplierVerified bool
}

// DeclineFinding flags a supplier whose latest purity window fell
// meaningfully below the preceding one.
type DeclineFinding struct {
	Supplier    string   `json:"supplier"`
	Peptide     Peptide  `json:"peptide"`
	PreviousAvg float64  `json:"previous_avg"`
	RecentAvg   float64  `json:"recent_avg"`
	Drop        float64  `json:"drop"`
	SampleCount int      `json:"sample_count"`
	Severity    Severity `json:"severity"`
}

// VarianceFinding flags a supplier with high batch-to-batch purity spread.
type VarianceFinding struct {
	Supplier string   `json:"supplier"`
	Peptide  Peptide  `json:"peptide"`
	Mean     float64  `json:"mean"`
	StdDev   float64  `json:"std_dev"`
	Range    float64  `json:"range"`
	Batches  int      `json:"batches"`
	Severity Severity `json:"severity"`
}

// SafetyFinding flags a single sample whose endotoxin or residual TFA
// readings exceed the safety thresholds.
type SafetyFinding struct {
	TrackingID string   `json:"tracking_id"`
	Supplier   string   `json:"supplier"`
	Peptide    Peptide  `json:"peptide"`
	Concerns   []string `json:"concerns"`
	Severity   Severity `json:"severity"`
}

// MarketTrend summarizes one peptide's purity direction across the window.
type MarketTrend struct {
	AvgPurity   float64 `json:"avg_purity"`
	Trend       string  `json:"trend"`
	SampleCount int     `json:"sample_count"`
}

// InsightRequest carries one run's findings to the insight generator.
type InsightRequest struct {
	TotalTests    int
	SupplierCount int
	PeptideCount  int
	Declining     []DeclineFinding
	Variance      []VarianceFinding
	Safety        []SafetyFinding
	Trends        map[Peptide]MarketTrend
}

// CriticalAlert is one line of the high-priority alert message.
type CriticalAlert struct {
	Supplier string
	Concern  string
}

// RunSummary is the always-sent wrap-up notification for a run.
type RunSummary struct {
	TotalTests int
	Declining  int
	Safety     int
	Insights   string
}
