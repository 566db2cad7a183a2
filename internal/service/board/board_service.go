package board

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/kafka"
	"tripdesk/internal/logger"
	"tripdesk/internal/repository"

	"github.com/google/uuid"
)

type BoardUseCase interface {
	LoadBoard(ctx context.Context, search string) ([]Column, error)
	ListEnquiries(ctx context.Context, search string, status domain.Stage) ([]domain.Enquiry, error)
	AddEnquiry(ctx context.Context, input CreateEnquiryInput) (*domain.Enquiry, error)
	GetEnquiry(ctx context.Context, id string) (*domain.Enquiry, error)
	UpdateEnquiry(ctx context.Context, id string, patch domain.EnquiryPatch) (*domain.Enquiry, error)
	MoveEnquiry(ctx context.Context, id string, from, to domain.Stage) (*domain.Enquiry, error)
	Summary(ctx context.Context) ([]StageCount, error)
	NotifyIdleEnquiries(ctx context.Context, idleFor time.Duration) ([]domain.Enquiry, error)
}

// Column is one rendered lane of the board: a stage plus the enquiries
// currently sitting in it, newest enquiry first.
type Column struct {
	Stage     domain.StageInfo `json:"stage"`
	Enquiries []domain.Enquiry `json:"enquiries"`
}

type StageCount struct {
	Stage domain.StageInfo `json:"stage"`
	Count int              `json:"count"`
}

type Cache interface {
	GetEnquiries(ctx context.Context) ([]domain.Enquiry, error)
	SetEnquiries(ctx context.Context, enquiries []domain.Enquiry) error
	InvalidateEnquiries(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BoardService struct {
	enquiries          repository.EnquiryRepository
	cache              Cache
	producer           Producer
	enquiryTopic       string
	notificationsTopic string
}

type CreateEnquiryInput struct {
	Name               string   `json:"name"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email"`
	Locations          string   `json:"locations"`
	TourType           string   `json:"tour_type"`
	EstimatedDates     string   `json:"estimated_dates"`
	Currency           string   `json:"currency"`
	Budget             float64  `json:"budget"`
	NumberOfTravellers int      `json:"number_of_travellers"`
	NumberOfKids       int      `json:"number_of_kids"`
	TravelingWithPets  bool     `json:"traveling_with_pets"`
	PickupLocation     string   `json:"pickup_location"`
	DropLocation       string   `json:"drop_location"`
	MustSeeSpots       string   `json:"must_see_spots"`
	PacePreference     string   `json:"pace_preference"`
	FlightsRequired    bool     `json:"flights_required"`
	Notes              string   `json:"notes"`
	Tags               []string `json:"tags"`
	LeadSource         string   `json:"lead_source"`
	AssignedStaff      string   `json:"assigned_staff"`
	PointOfContact     string   `json:"point_of_contact"`
}

type BoardServiceOption func(*BoardService)

func WithNotificationsTopic(topic string) BoardServiceOption {
	return func(s *BoardService) {
		s.notificationsTopic = topic
	}
}

func NewBoardService(
	enquiries repository.EnquiryRepository,
	cache Cache,
	producer Producer,
	enquiryTopic string,
	opts ...BoardServiceOption,
) *BoardService {
	service := &BoardService{
		enquiries:    enquiries,
		cache:        cache,
		producer:     producer,
		enquiryTopic: enquiryTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateContact(name, phone, email string) *domain.ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if strings.TrimSpace(phone) == "" {
		fields["phone"] = "phone is required"
	} else if digits < 7 {
		fields["phone"] = "phone must contain at least 7 digits"
	}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "email is required"
	} else if !emailPattern.MatchString(email) {
		fields["email"] = "email is not a valid address"
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}

func (s *BoardService) AddEnquiry(ctx context.Context, input CreateEnquiryInput) (*domain.Enquiry, error) {
	if verr := validateContact(input.Name, input.Phone, input.Email); verr != nil {
		return nil, verr
	}

	enquiry := &domain.Enquiry{
		ID:                 uuid.NewString(),
		Name:               input.Name,
		Phone:              input.Phone,
		Email:              input.Email,
		Locations:          input.Locations,
		TourType:           input.TourType,
		EstimatedDates:     input.EstimatedDates,
		Currency:           input.Currency,
		Budget:             input.Budget,
		NumberOfTravellers: input.NumberOfTravellers,
		NumberOfKids:       input.NumberOfKids,
		TravelingWithPets:  input.TravelingWithPets,
		PickupLocation:     input.PickupLocation,
		DropLocation:       input.DropLocation,
		MustSeeSpots:       input.MustSeeSpots,
		PacePreference:     input.PacePreference,
		FlightsRequired:    input.FlightsRequired,
		Notes:              input.Notes,
		Tags:               input.Tags,
		LeadSource:         input.LeadSource,
		AssignedStaff:      input.AssignedStaff,
		PointOfContact:     input.PointOfContact,
		Status:             domain.StageEnquiry,
		EnquiryDate:        time.Now(),
	}
	if enquiry.Tags == nil {
		enquiry.Tags = []string{}
	}

	if err := s.enquiries.Create(ctx, enquiry); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.publish(ctx, "enquiry_created", enquiry, "", "")
	return enquiry, nil
}

func (s *BoardService) GetEnquiry(ctx context.Context, id string) (*domain.Enquiry, error) {
	return s.enquiries.GetByID(ctx, id)
}

func (s *BoardService) UpdateEnquiry(ctx context.Context, id string, patch domain.EnquiryPatch) (*domain.Enquiry, error) {
	fields := map[string]string{}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		fields["name"] = "name cannot be cleared"
	}
	if patch.Email != nil && !emailPattern.MatchString(*patch.Email) {
		fields["email"] = "email is not a valid address"
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	enquiry, err := s.enquiries.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return enquiry, nil
}

// MoveEnquiry is the drag-and-drop transition. Any stage may move to any other
// stage; the only checks are that the target exists and that the enquiry still
// sits where the caller thinks it does.
func (s *BoardService) MoveEnquiry(ctx context.Context, id string, from, to domain.Stage) (*domain.Enquiry, error) {
	if !domain.ValidStage(to) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStage, to)
	}
	if !domain.ValidStage(from) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStage, from)
	}

	enquiry, err := s.enquiries.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.publish(ctx, "enquiry_moved", enquiry, string(from), string(to))
	return enquiry, nil
}

func (s *BoardService) LoadBoard(ctx context.Context, search string) ([]Column, error) {
	enquiries, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	enquiries = filterEnquiries(enquiries, search, "")

	columns := make([]Column, 0, len(domain.Stages()))
	for _, stage := range domain.Stages() {
		column := Column{Stage: stage, Enquiries: []domain.Enquiry{}}
		for _, e := range enquiries {
			if e.Status == stage.ID {
				column.Enquiries = append(column.Enquiries, e)
			}
		}
		columns = append(columns, column)
	}
	return columns, nil
}

func (s *BoardService) ListEnquiries(ctx context.Context, search string, status domain.Stage) ([]domain.Enquiry, error) {
	if status != "" && !domain.ValidStage(status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStage, status)
	}
	enquiries, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterEnquiries(enquiries, search, status), nil
}

func (s *BoardService) Summary(ctx context.Context) ([]StageCount, error) {
	counts, err := s.enquiries.CountByStage(ctx)
	if err != nil {
		return nil, err
	}
	summary := make([]StageCount, 0, len(domain.Stages()))
	for _, stage := range domain.Stages() {
		summary = append(summary, StageCount{Stage: stage, Count: counts[stage.ID]})
	}
	return summary, nil
}

// NotifyIdleEnquiries publishes a follow_up_due notification for every
// non-completed enquiry untouched for longer than idleFor. State is never
// mutated: stage advancement stays an explicit move.
func (s *BoardService) NotifyIdleEnquiries(ctx context.Context, idleFor time.Duration) ([]domain.Enquiry, error) {
	cutoff := time.Now().Add(-idleFor)
	idle, err := s.enquiries.ListIdleSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	for i := range idle {
		s.publish(ctx, "follow_up_due", &idle[i], "", "")
	}
	return idle, nil
}

// listAll reads through the cache when one is configured. The repository keeps
// enquiries ordered by enquiry date descending, so grouping preserves the
// newest-first column order.
func (s *BoardService) listAll(ctx context.Context) ([]domain.Enquiry, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetEnquiries(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	enquiries, err := s.enquiries.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetEnquiries(ctx, enquiries)
	}
	return enquiries, nil
}

func filterEnquiries(enquiries []domain.Enquiry, search string, status domain.Stage) []domain.Enquiry {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" && status == "" {
		return enquiries
	}

	filtered := make([]domain.Enquiry, 0, len(enquiries))
	for _, e := range enquiries {
		if status != "" && e.Status != status {
			continue
		}
		if term != "" && !matchesTerm(e, term) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func matchesTerm(e domain.Enquiry, term string) bool {
	for _, field := range []string{e.Name, e.Phone, e.Email, e.Locations} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (s *BoardService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateEnquiries(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("failed to invalidate enquiry cache")
	}
}

func (s *BoardService) publish(ctx context.Context, eventType string, enquiry *domain.Enquiry, from, to string) {
	if s.producer == nil || s.enquiryTopic == "" {
		return
	}
	event := kafka.EnquiryEvent{
		Type:       eventType,
		EnquiryID:  enquiry.ID,
		CustomerID: domain.ResolveCustomerID(enquiry.ID),
		Name:       enquiry.Name,
		Email:      enquiry.Email,
		FromStage:  from,
		ToStage:    to,
		Stage:      string(enquiry.Status),
		OccurredAt: time.Now(),
	}
	if err := s.producer.Publish(ctx, s.enquiryTopic, enquiry.ID, event); err != nil {
		logger.Log.Warn().Err(err).Str("event", eventType).Str("enquiry_id", enquiry.ID).Msg("failed to publish enquiry event")
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, enquiry.ID, event); err != nil {
			logger.Log.Warn().Err(err).Str("event", eventType).Str("enquiry_id", enquiry.ID).Msg("failed to publish notification event")
		}
	}
}

var _ BoardUseCase = (*BoardService)(nil)
