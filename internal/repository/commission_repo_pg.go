package repository

import (
	"context"

	"tripdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommissionRepository interface {
	Upsert(ctx context.Context, commission *domain.Commission) error
	ListByEnquiry(ctx context.Context, enquiryID string) ([]domain.Commission, error)
}

type PGCommissionRepository struct {
	db *pgxpool.Pool
}

func NewCommissionRepository(db *pgxpool.Pool) CommissionRepository {
	return &PGCommissionRepository{db: db}
}

// Upsert keeps at most one commission row per (enquiry_id, dmc_id) pair; a
// second write for the same pair replaces the amounts in place.
func (r *PGCommissionRepository) Upsert(ctx context.Context, commission *domain.Commission) error {
	return r.db.QueryRow(ctx, `INSERT INTO commissions (id, enquiry_id, dmc_id, quoted_amount, commission_rate, commission_due, currency, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (enquiry_id, dmc_id) DO UPDATE
		SET quoted_amount=EXCLUDED.quoted_amount, commission_rate=EXCLUDED.commission_rate, commission_due=EXCLUDED.commission_due, currency=EXCLUDED.currency, notes=EXCLUDED.notes, updated_at=now()
		RETURNING id, created_at, updated_at`,
		commission.ID, commission.EnquiryID, commission.DmcID, commission.QuotedAmount, commission.CommissionRate, commission.CommissionDue, commission.Currency, commission.Notes).
		Scan(&commission.ID, &commission.CreatedAt, &commission.UpdatedAt)
}

func (r *PGCommissionRepository) ListByEnquiry(ctx context.Context, enquiryID string) ([]domain.Commission, error) {
	rows, err := r.db.Query(ctx, `SELECT id, enquiry_id, dmc_id, quoted_amount, commission_rate, commission_due, currency, notes, created_at, updated_at FROM commissions WHERE enquiry_id=$1 ORDER BY created_at`, enquiryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	commissions := make([]domain.Commission, 0)
	for rows.Next() {
		var c domain.Commission
		if err := rows.Scan(&c.ID, &c.EnquiryID, &c.DmcID, &c.QuotedAmount, &c.CommissionRate, &c.CommissionDue, &c.Currency, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		commissions = append(commissions, c)
	}
	return commissions, rows.Err()
}

var _ CommissionRepository = (*PGCommissionRepository)(nil)
