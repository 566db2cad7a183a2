package engagement

import (
	"context"
	"strings"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/kafka"
	"tripdesk/internal/logger"
	"tripdesk/internal/repository"

	"github.com/google/uuid"
)

type EngagementUseCase interface {
	AddFeedback(ctx context.Context, input FeedbackInput) (*domain.CustomerFeedback, error)
	ListFeedback(ctx context.Context, customerID string) ([]domain.CustomerFeedback, error)
	SendItinerary(ctx context.Context, input SendItineraryInput) (*domain.SentItinerary, error)
	ListSent(ctx context.Context, customerID string) ([]domain.SentItinerary, error)
}

type FeedbackInput struct {
	EnquiryID   string `json:"enquiry_id"`
	ItineraryID string `json:"itinerary_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SendItineraryInput struct {
	EnquiryID   string `json:"enquiry_id"`
	ItineraryID string `json:"itinerary_id"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
	Attachment  string `json:"attachment"`
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type EngagementService struct {
	feedback           repository.FeedbackRepository
	sent               repository.SentItineraryRepository
	enquiries          repository.EnquiryRepository
	producer           Producer
	notificationsTopic string
}

func NewEngagementService(
	feedback repository.FeedbackRepository,
	sent repository.SentItineraryRepository,
	enquiries repository.EnquiryRepository,
	producer Producer,
	notificationsTopic string,
) *EngagementService {
	return &EngagementService{
		feedback:           feedback,
		sent:               sent,
		enquiries:          enquiries,
		producer:           producer,
		notificationsTopic: notificationsTopic,
	}
}

func (s *EngagementService) AddFeedback(ctx context.Context, input FeedbackInput) (*domain.CustomerFeedback, error) {
	fields := map[string]string{}
	if strings.TrimSpace(input.EnquiryID) == "" {
		fields["enquiry_id"] = "enquiry_id is required"
	}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "title is required"
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	enquiry, err := s.enquiries.GetByID(ctx, input.EnquiryID)
	if err != nil {
		return nil, err
	}

	feedback := &domain.CustomerFeedback{
		ID:          uuid.NewString(),
		CustomerID:  domain.ResolveCustomerID(enquiry.ID),
		ItineraryID: input.ItineraryID,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *EngagementService) ListFeedback(ctx context.Context, customerID string) ([]domain.CustomerFeedback, error) {
	return s.feedback.ListByCustomer(ctx, customerID)
}

// SendItinerary records the share and notifies the customer. It never touches
// the enquiry's pipeline stage: advancing the board is always an explicit move.
func (s *EngagementService) SendItinerary(ctx context.Context, input SendItineraryInput) (*domain.SentItinerary, error) {
	if strings.TrimSpace(input.EnquiryID) == "" {
		return nil, domain.NewValidationError(map[string]string{"enquiry_id": "enquiry_id is required"})
	}

	enquiry, err := s.enquiries.GetByID(ctx, input.EnquiryID)
	if err != nil {
		return nil, err
	}

	record := &domain.SentItinerary{
		ID:          uuid.NewString(),
		CustomerID:  domain.ResolveCustomerID(enquiry.ID),
		ItineraryID: input.ItineraryID,
		Email:       input.Email,
		Phone:       input.Phone,
		Notes:       input.Notes,
		Attachment:  input.Attachment,
	}
	if record.Email == "" {
		record.Email = enquiry.Email
	}
	if record.Phone == "" {
		record.Phone = enquiry.Phone
	}

	if err := s.sent.Create(ctx, record); err != nil {
		return nil, err
	}

	if s.producer != nil && s.notificationsTopic != "" {
		event := kafka.EnquiryEvent{
			Type:       "itinerary_sent",
			EnquiryID:  enquiry.ID,
			CustomerID: record.CustomerID,
			Name:       enquiry.Name,
			Email:      record.Email,
			Stage:      string(enquiry.Status),
			Notes:      record.Notes,
			OccurredAt: time.Now(),
		}
		if err := s.producer.Publish(ctx, s.notificationsTopic, enquiry.ID, event); err != nil {
			logger.Log.Warn().Err(err).Str("enquiry_id", enquiry.ID).Msg("failed to publish itinerary_sent event")
		}
	}
	return record, nil
}

func (s *EngagementService) ListSent(ctx context.Context, customerID string) ([]domain.SentItinerary, error) {
	return s.sent.ListByCustomer(ctx, customerID)
}

var _ EngagementUseCase = (*EngagementService)(nil)
