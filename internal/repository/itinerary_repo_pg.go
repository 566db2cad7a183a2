package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tripdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *domain.Itinerary) error
	GetByID(ctx context.Context, id string) (*domain.Itinerary, error)
	ListByEnquiry(ctx context.Context, enquiryID string) ([]domain.Itinerary, error)
	Update(ctx context.Context, itinerary *domain.Itinerary) error
}

type PGItineraryRepository struct {
	db *pgxpool.Pool
}

func NewItineraryRepository(db *pgxpool.Pool) ItineraryRepository {
	return &PGItineraryRepository{db: db}
}

const itineraryColumns = `id, enquiry_id, title, destinations, start_date, end_date, travellers, kids, budget, currency, activity_preference, hotel_preference, meal_preference, dietary_needs, transport_mode, days, stays, status, created_at, updated_at`

func scanItinerary(row pgx.Row) (*domain.Itinerary, error) {
	var it domain.Itinerary
	var days, stays []byte
	if err := row.Scan(&it.ID, &it.EnquiryID, &it.Title, &it.Destinations, &it.StartDate, &it.EndDate, &it.NumberOfTravellers, &it.NumberOfKids, &it.Budget, &it.Currency, &it.ActivityPreference, &it.HotelPreference, &it.MealPreference, &it.DietaryNeeds, &it.TransportMode, &days, &stays, &it.Status, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(days, &it.Days); err != nil {
		return nil, fmt.Errorf("decode day plans: %w", err)
	}
	if err := json.Unmarshal(stays, &it.Stays); err != nil {
		return nil, fmt.Errorf("decode stays: %w", err)
	}
	return &it, nil
}

func encodePlans(it *domain.Itinerary) (days, stays []byte, err error) {
	if it.Days == nil {
		it.Days = []domain.DayPlan{}
	}
	if it.Stays == nil {
		it.Stays = []domain.Stay{}
	}
	days, err = json.Marshal(it.Days)
	if err != nil {
		return nil, nil, fmt.Errorf("encode day plans: %w", err)
	}
	stays, err = json.Marshal(it.Stays)
	if err != nil {
		return nil, nil, fmt.Errorf("encode stays: %w", err)
	}
	return days, stays, nil
}

func (r *PGItineraryRepository) Create(ctx context.Context, itinerary *domain.Itinerary) error {
	days, stays, err := encodePlans(itinerary)
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `INSERT INTO itineraries (id, enquiry_id, title, destinations, start_date, end_date, travellers, kids, budget, currency, activity_preference, hotel_preference, meal_preference, dietary_needs, transport_mode, days, stays, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at`,
		itinerary.ID, itinerary.EnquiryID, itinerary.Title, itinerary.Destinations, itinerary.StartDate, itinerary.EndDate, itinerary.NumberOfTravellers, itinerary.NumberOfKids, itinerary.Budget, itinerary.Currency, itinerary.ActivityPreference, itinerary.HotelPreference, itinerary.MealPreference, itinerary.DietaryNeeds, itinerary.TransportMode, days, stays, itinerary.Status).
		Scan(&itinerary.CreatedAt, &itinerary.UpdatedAt)
}

func (r *PGItineraryRepository) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itineraryColumns+` FROM itineraries WHERE id=$1`, id)
	it, err := scanItinerary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (r *PGItineraryRepository) ListByEnquiry(ctx context.Context, enquiryID string) ([]domain.Itinerary, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itineraryColumns+` FROM itineraries WHERE enquiry_id=$1 ORDER BY created_at DESC`, enquiryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itineraries := make([]domain.Itinerary, 0)
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, *it)
	}
	return itineraries, rows.Err()
}

func (r *PGItineraryRepository) Update(ctx context.Context, itinerary *domain.Itinerary) error {
	days, stays, err := encodePlans(itinerary)
	if err != nil {
		return err
	}
	row := r.db.QueryRow(ctx, `UPDATE itineraries SET title=$1, destinations=$2, start_date=$3, end_date=$4, travellers=$5, kids=$6, budget=$7, currency=$8, activity_preference=$9, hotel_preference=$10, meal_preference=$11, dietary_needs=$12, transport_mode=$13, days=$14, stays=$15, status=$16, updated_at=now() WHERE id=$17 RETURNING created_at, updated_at`,
		itinerary.Title, itinerary.Destinations, itinerary.StartDate, itinerary.EndDate, itinerary.NumberOfTravellers, itinerary.NumberOfKids, itinerary.Budget, itinerary.Currency, itinerary.ActivityPreference, itinerary.HotelPreference, itinerary.MealPreference, itinerary.DietaryNeeds, itinerary.TransportMode, days, stays, itinerary.Status, itinerary.ID)
	if err := row.Scan(&itinerary.CreatedAt, &itinerary.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

var _ ItineraryRepository = (*PGItineraryRepository)(nil)
