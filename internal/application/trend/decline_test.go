package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptiq/trendwatch/internal/domain/quality"
)

func TestDetectDecliningSuppliers_Boundaries(t *testing.T) {
	tests := []struct {
		name         string
		recentPurity float64 // previous window is pinned at 90
		wantFinding  bool
		wantSeverity quality.Severity
	}{
		{
			name:         "drop exactly 2.0 is not a finding",
			recentPurity: 88.0,
			wantFinding:  false,
		},
		{
			name:         "drop just over 2.0 is a warning",
			recentPurity: 87.9999,
			wantFinding:  true,
			wantSeverity: quality.SeverityWarning,
		},
		{
			name:         "drop exactly 5.0 stays warning",
			recentPurity: 85.0,
			wantFinding:  true,
			wantSeverity: quality.SeverityWarning,
		},
		{
			name:         "drop just over 5.0 is critical",
			recentPurity: 84.9999,
			wantFinding:  true,
			wantSeverity: quality.SeverityCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := newestFirst("Acme", quality.PeptideBPC157,
				tt.recentPurity, tt.recentPurity, tt.recentPurity, 90, 90, 90)

			findings := DetectDecliningSuppliers(records)

			if !tt.wantFinding {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantSeverity, findings[0].Severity)
		})
	}
}

func TestDetectDecliningSuppliers_AcmeExample(t *testing.T) {
	// Purities in time order were [99, 98, 97, 85, 84, 83]; the snapshot is
	// newest first.
	records := newestFirst("Acme", quality.PeptideSemaglutide, 83, 84, 85, 97, 98, 99)

	findings := DetectDecliningSuppliers(records)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, "Acme", f.Supplier)
	assert.Equal(t, quality.PeptideSemaglutide, f.Peptide)
	assert.Equal(t, 84.0, f.RecentAvg)
	assert.Equal(t, 98.0, f.PreviousAvg)
	assert.Equal(t, 14.0, f.Drop)
	assert.Equal(t, 6, f.SampleCount)
	assert.Equal(t, quality.SeverityCritical, f.Severity)
}

func TestDetectDecliningSuppliers_FewerThanFourRecords(t *testing.T) {
	records := newestFirst("Acme", quality.PeptideBPC157, 80, 95, 95)
	assert.Empty(t, DetectDecliningSuppliers(records))
}

func TestDetectDecliningSuppliers_FourRecords(t *testing.T) {
	// Previous window is the single fourth record.
	records := newestFirst("Acme", quality.PeptideBPC157, 90, 90, 90, 96)

	findings := DetectDecliningSuppliers(records)

	require.Len(t, findings, 1)
	assert.Equal(t, 96.0, findings[0].PreviousAvg)
	assert.Equal(t, 6.0, findings[0].Drop)
	assert.Equal(t, quality.SeverityCritical, findings[0].Severity)
}

func TestDetectDecliningSuppliers_MissingPurityIgnored(t *testing.T) {
	records := newestFirst("Acme", quality.PeptideBPC157, 84, 84, 84, 98, 98, 98)
	// One recent reading missing: the mean covers the remaining two.
	records[1].Purity = nil

	findings := DetectDecliningSuppliers(records)

	require.Len(t, findings, 1)
	assert.Equal(t, 84.0, findings[0].RecentAvg)
}

func TestDetectDecliningSuppliers_PerSupplierGrouping(t *testing.T) {
	records := append(
		newestFirst("Falling", quality.PeptideBPC157, 84, 84, 84, 98, 98, 98),
		newestFirst("Steady", quality.PeptideBPC157, 98, 98, 98, 98, 98, 98)...,
	)

	findings := DetectDecliningSuppliers(records)

	require.Len(t, findings, 1)
	assert.Equal(t, "Falling", findings[0].Supplier)
}
