package repository

import (
	"context"
	"fmt"

	"tripdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentMethodRepository interface {
	Create(ctx context.Context, method *domain.PaymentMethod) error
	ListByCustomer(ctx context.Context, customerID string) ([]domain.PaymentMethod, error)
}

type PGPaymentMethodRepository struct {
	db *pgxpool.Pool
}

func NewPaymentMethodRepository(db *pgxpool.Pool) PaymentMethodRepository {
	return &PGPaymentMethodRepository{db: db}
}

// Create stores the method. When the new method is flagged default, the
// customer's previous default is cleared in the same transaction so at most one
// default exists per customer.
func (r *PGPaymentMethodRepository) Create(ctx context.Context, method *domain.PaymentMethod) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin payment method insert: %w", err)
	}
	defer tx.Rollback(ctx)

	if method.IsDefault {
		if _, err := tx.Exec(ctx, `UPDATE payment_methods SET is_default=FALSE WHERE customer_id=$1 AND is_default`, method.CustomerID); err != nil {
			return err
		}
	}

	if err := tx.QueryRow(ctx, `INSERT INTO payment_methods (id, customer_id, type, provider, holder_name, last4, expiry_mm, expiry_yy, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		method.ID, method.CustomerID, method.Type, method.Provider, method.HolderName, method.Last4, method.ExpiryMM, method.ExpiryYY, method.IsDefault).
		Scan(&method.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGPaymentMethodRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.PaymentMethod, error) {
	rows, err := r.db.Query(ctx, `SELECT id, customer_id, type, provider, holder_name, last4, expiry_mm, expiry_yy, is_default, created_at FROM payment_methods WHERE customer_id=$1 ORDER BY is_default DESC, created_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := make([]domain.PaymentMethod, 0)
	for rows.Next() {
		var m domain.PaymentMethod
		if err := rows.Scan(&m.ID, &m.CustomerID, &m.Type, &m.Provider, &m.HolderName, &m.Last4, &m.ExpiryMM, &m.ExpiryYY, &m.IsDefault, &m.CreatedAt); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

var _ PaymentMethodRepository = (*PGPaymentMethodRepository)(nil)
