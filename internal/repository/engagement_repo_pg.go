package repository

import (
	"context"

	"tripdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.CustomerFeedback) error
	ListByCustomer(ctx context.Context, customerID string) ([]domain.CustomerFeedback, error)
}

type SentItineraryRepository interface {
	Create(ctx context.Context, record *domain.SentItinerary) error
	ListByCustomer(ctx context.Context, customerID string) ([]domain.SentItinerary, error)
}

type PGFeedbackRepository struct {
	db *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) FeedbackRepository {
	return &PGFeedbackRepository{db: db}
}

func (r *PGFeedbackRepository) Create(ctx context.Context, feedback *domain.CustomerFeedback) error {
	return r.db.QueryRow(ctx, `INSERT INTO customer_feedback (id, customer_id, itinerary_id, type, title, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		feedback.ID, feedback.CustomerID, feedback.ItineraryID, feedback.Type, feedback.Title, feedback.Description).
		Scan(&feedback.CreatedAt)
}

func (r *PGFeedbackRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.CustomerFeedback, error) {
	rows, err := r.db.Query(ctx, `SELECT id, customer_id, itinerary_id, type, title, description, created_at FROM customer_feedback WHERE customer_id=$1 ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := make([]domain.CustomerFeedback, 0)
	for rows.Next() {
		var f domain.CustomerFeedback
		if err := rows.Scan(&f.ID, &f.CustomerID, &f.ItineraryID, &f.Type, &f.Title, &f.Description, &f.CreatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

type PGSentItineraryRepository struct {
	db *pgxpool.Pool
}

func NewSentItineraryRepository(db *pgxpool.Pool) SentItineraryRepository {
	return &PGSentItineraryRepository{db: db}
}

func (r *PGSentItineraryRepository) Create(ctx context.Context, record *domain.SentItinerary) error {
	return r.db.QueryRow(ctx, `INSERT INTO sent_itineraries (id, customer_id, itinerary_id, email, phone, notes, attachment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING sent_at`,
		record.ID, record.CustomerID, record.ItineraryID, record.Email, record.Phone, record.Notes, record.Attachment).
		Scan(&record.SentAt)
}

func (r *PGSentItineraryRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.SentItinerary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, customer_id, itinerary_id, email, phone, notes, attachment, sent_at FROM sent_itineraries WHERE customer_id=$1 ORDER BY sent_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.SentItinerary, 0)
	for rows.Next() {
		var s domain.SentItinerary
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.ItineraryID, &s.Email, &s.Phone, &s.Notes, &s.Attachment, &s.SentAt); err != nil {
			return nil, err
		}
		records = append(records, s)
	}
	return records, rows.Err()
}

var (
	_ FeedbackRepository      = (*PGFeedbackRepository)(nil)
	_ SentItineraryRepository = (*PGSentItineraryRepository)(nil)
)
