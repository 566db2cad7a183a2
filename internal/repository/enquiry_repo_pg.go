package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) error
	GetByID(ctx context.Context, id string) (*domain.Enquiry, error)
	List(ctx context.Context) ([]domain.Enquiry, error)
	Update(ctx context.Context, id string, patch domain.EnquiryPatch) (*domain.Enquiry, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.Stage) (*domain.Enquiry, error)
	CountByStage(ctx context.Context) (map[domain.Stage]int, error)
	ListIdleSince(ctx context.Context, cutoff time.Time) ([]domain.Enquiry, error)
}

type PGEnquiryRepository struct {
	db *pgxpool.Pool
}

func NewEnquiryRepository(db *pgxpool.Pool) EnquiryRepository {
	return &PGEnquiryRepository{db: db}
}

const enquiryColumns = `id, name, phone, email, locations, tour_type, estimated_dates, currency, budget, travellers, kids, with_pets, pickup_location, drop_location, must_see_spots, pace_preference, flights_required, notes, tags, lead_source, assigned_staff, point_of_contact, status, enquiry_date, created_at, updated_at`

func scanEnquiry(row pgx.Row) (*domain.Enquiry, error) {
	var e domain.Enquiry
	if err := row.Scan(&e.ID, &e.Name, &e.Phone, &e.Email, &e.Locations, &e.TourType, &e.EstimatedDates, &e.Currency, &e.Budget, &e.NumberOfTravellers, &e.NumberOfKids, &e.TravelingWithPets, &e.PickupLocation, &e.DropLocation, &e.MustSeeSpots, &e.PacePreference, &e.FlightsRequired, &e.Notes, &e.Tags, &e.LeadSource, &e.AssignedStaff, &e.PointOfContact, &e.Status, &e.EnquiryDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PGEnquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	return r.db.QueryRow(ctx, `INSERT INTO enquiries (id, name, phone, email, locations, tour_type, estimated_dates, currency, budget, travellers, kids, with_pets, pickup_location, drop_location, must_see_spots, pace_preference, flights_required, notes, tags, lead_source, assigned_staff, point_of_contact, status, enquiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING created_at, updated_at`,
		enquiry.ID, enquiry.Name, enquiry.Phone, enquiry.Email, enquiry.Locations, enquiry.TourType, enquiry.EstimatedDates, enquiry.Currency, enquiry.Budget, enquiry.NumberOfTravellers, enquiry.NumberOfKids, enquiry.TravelingWithPets, enquiry.PickupLocation, enquiry.DropLocation, enquiry.MustSeeSpots, enquiry.PacePreference, enquiry.FlightsRequired, enquiry.Notes, enquiry.Tags, enquiry.LeadSource, enquiry.AssignedStaff, enquiry.PointOfContact, enquiry.Status, enquiry.EnquiryDate).
		Scan(&enquiry.CreatedAt, &enquiry.UpdatedAt)
}

func (r *PGEnquiryRepository) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+enquiryColumns+` FROM enquiries WHERE id=$1`, id)
	e, err := scanEnquiry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *PGEnquiryRepository) List(ctx context.Context) ([]domain.Enquiry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+enquiryColumns+` FROM enquiries ORDER BY enquiry_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enquiries := make([]domain.Enquiry, 0)
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, *e)
	}
	return enquiries, rows.Err()
}

func (r *PGEnquiryRepository) Update(ctx context.Context, id string, patch domain.EnquiryPatch) (*domain.Enquiry, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Locations != nil {
		set("locations", *patch.Locations)
	}
	if patch.TourType != nil {
		set("tour_type", *patch.TourType)
	}
	if patch.EstimatedDates != nil {
		set("estimated_dates", *patch.EstimatedDates)
	}
	if patch.Currency != nil {
		set("currency", *patch.Currency)
	}
	if patch.Budget != nil {
		set("budget", *patch.Budget)
	}
	if patch.NumberOfTravellers != nil {
		set("travellers", *patch.NumberOfTravellers)
	}
	if patch.NumberOfKids != nil {
		set("kids", *patch.NumberOfKids)
	}
	if patch.TravelingWithPets != nil {
		set("with_pets", *patch.TravelingWithPets)
	}
	if patch.PickupLocation != nil {
		set("pickup_location", *patch.PickupLocation)
	}
	if patch.DropLocation != nil {
		set("drop_location", *patch.DropLocation)
	}
	if patch.MustSeeSpots != nil {
		set("must_see_spots", *patch.MustSeeSpots)
	}
	if patch.PacePreference != nil {
		set("pace_preference", *patch.PacePreference)
	}
	if patch.FlightsRequired != nil {
		set("flights_required", *patch.FlightsRequired)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}
	if patch.Tags != nil {
		set("tags", patch.Tags)
	}
	if patch.LeadSource != nil {
		set("lead_source", *patch.LeadSource)
	}
	if patch.AssignedStaff != nil {
		set("assigned_staff", *patch.AssignedStaff)
	}
	if patch.PointOfContact != nil {
		set("point_of_contact", *patch.PointOfContact)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE enquiries SET %s WHERE id=$%d RETURNING %s`, strings.Join(sets, ", "), len(args), enquiryColumns)

	e, err := scanEnquiry(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// UpdateStatus performs the stage transition with an optimistic precondition:
// the row is updated only if it still sits in the caller's assumed source
// stage. A concurrent move surfaces as ErrStageConflict, never a silent
// overwrite.
func (r *PGEnquiryRepository) UpdateStatus(ctx context.Context, id string, from, to domain.Stage) (*domain.Enquiry, error) {
	row := r.db.QueryRow(ctx, `UPDATE enquiries SET status=$1, updated_at=now() WHERE id=$2 AND status=$3 RETURNING `+enquiryColumns, to, id, from)
	e, err := scanEnquiry(row)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	var current domain.Stage
	if err := r.db.QueryRow(ctx, `SELECT status FROM enquiries WHERE id=$1`, id).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: expected %q, found %q", domain.ErrStageConflict, from, current)
}

func (r *PGEnquiryRepository) CountByStage(ctx context.Context) (map[domain.Stage]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, count(*) FROM enquiries GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Stage]int)
	for rows.Next() {
		var stage domain.Stage
		var n int
		if err := rows.Scan(&stage, &n); err != nil {
			return nil, err
		}
		counts[stage] = n
	}
	return counts, rows.Err()
}

// ListIdleSince returns non-completed enquiries whose last update predates the
// cutoff. Used by the follow-up sweep; never mutates anything.
func (r *PGEnquiryRepository) ListIdleSince(ctx context.Context, cutoff time.Time) ([]domain.Enquiry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+enquiryColumns+` FROM enquiries WHERE status <> $1 AND updated_at <= $2 ORDER BY updated_at`, domain.StageCompleted, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var idle []domain.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		idle = append(idle, *e)
	}
	return idle, rows.Err()
}

var _ EnquiryRepository = (*PGEnquiryRepository)(nil)
