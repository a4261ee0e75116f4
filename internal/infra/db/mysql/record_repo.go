package mysql

import (
	"context"
	"database/sql"

	"github.com/peptiq/trendwatch/internal/domain/quality"
)

// RecordRepository is the MySQL variant of the record source for
// deployments that mirror the tracking data into MySQL with a snake_case
// schema. Semantics match the Postgres repository: completed samples only,
// newest first.
type RecordRepository struct{ db *sql.DB }

func NewRecordRepository(db *sql.DB) *RecordRepository { return &RecordRepository{db: db} }

func (r *RecordRepository) RecentCompleted(ctx context.Context, days int) ([]quality.TestRecord, error) {
	if days <= 0 {
		days = 7
	}
	const q = `
SELECT s.id, s.tracking_id, s.peptide_type, s.supplier_name,
       s.purity, s.endotoxin, s.residual_tfa,
       s.created_at, COALESCE(s.ai_grade, ''), COALESCE(sup.verified, 0)
FROM samples s
LEFT JOIN suppliers sup ON sup.name = s.supplier_name
WHERE s.status = 'COMPLETED'
  AND s.created_at >= DATE_SUB(NOW(), INTERVAL ? DAY)
ORDER BY s.created_at DESC;`

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
