package postgres

import (
	"context"
	"database/sql"

	"github.com/peptiq/trendwatch/internal/domain/quality"
)

type RecordRepository struct{ db *sql.DB }

func NewRecordRepository(db *sql.DB) *RecordRepository { return &RecordRepository{db: db} }

// RecentCompleted fetches completed samples from the past N days, newest
// first. Column names are the quoted camelCase identifiers the tracking
// service's Prisma schema created. Supplier verification comes from a LEFT
// JOIN so samples from unregistered suppliers still analyze.
func (r *RecordRepository) RecentCompleted(ctx context.Context, days int) ([]quality.TestRecord, error) {
	if days <= 0 {
		days = 7
	}
	const q = `
SELECT s.id, s."trackingId", s."peptideType", s."supplierName",
       s.purity, s.endotoxin, s."residualTfa",
       s."createdAt", COALESCE(s."aiGrade", ''), COALESCE(sup.verified, FALSE)
FROM samples s
LEFT JOIN "Supplier" sup ON sup.name = s."supplierName"
WHERE s.status = 'COMPLETED'
  AND s."createdAt" >= NOW() - ($1 * INTERVAL '1 day')
ORDER BY s."createdAt" DESC;`

	rows, err := r.db.QueryContext(ctx, q, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []quality.TestRecord
	for rows.Next() {
		var rec quality.TestRecord
		var purity, endotoxin, tfa sql.NullFloat64
		if err := rows.Scan(
			&rec.ID, &rec.TrackingID, &rec.Peptide, &rec.Supplier,
			&purity, &endotoxin, &tfa,
			&rec.CreatedAt, &rec.AIGrade, &rec.SupplierVerified,
		); err != nil {
			return nil, err
		}
		rec.Purity = floatPtr(purity)
		rec.Endotoxin = floatPtr(endotoxin)
		rec.ResidualTFA = floatPtr(tfa)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
