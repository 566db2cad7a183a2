package itinerary

import (
	"context"
	"fmt"

	"tripdesk/internal/domain"
	"tripdesk/internal/repository"

	"github.com/google/uuid"
)

type ItineraryUseCase interface {
	CreateItinerary(ctx context.Context, enquiryID string, input CreateItineraryInput) (*domain.Itinerary, error)
	GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error)
	ListByEnquiry(ctx context.Context, enquiryID string) ([]domain.Itinerary, error)
	UpdateItinerary(ctx context.Context, id string, input UpdateItineraryInput) (*domain.Itinerary, error)
}

type CreateItineraryInput struct {
	Title              string           `json:"title"`
	Destinations       string           `json:"destinations"`
	StartDate          string           `json:"start_date"`
	EndDate            string           `json:"end_date"`
	ActivityPreference string           `json:"activity_preference"`
	HotelPreference    string           `json:"hotel_preference"`
	MealPreference     string           `json:"meal_preference"`
	DietaryNeeds       string           `json:"dietary_needs"`
	TransportMode      string           `json:"transport_mode"`
	Days               []domain.DayPlan `json:"days"`
	Stays              []domain.Stay    `json:"stays"`
}

type UpdateItineraryInput struct {
	Title              *string          `json:"title"`
	Destinations       *string          `json:"destinations"`
	StartDate          *string          `json:"start_date"`
	EndDate            *string          `json:"end_date"`
	NumberOfTravellers *int             `json:"number_of_travellers"`
	NumberOfKids       *int             `json:"number_of_kids"`
	Budget             *float64         `json:"budget"`
	Currency           *string          `json:"currency"`
	ActivityPreference *string          `json:"activity_preference"`
	HotelPreference    *string          `json:"hotel_preference"`
	MealPreference     *string          `json:"meal_preference"`
	DietaryNeeds       *string          `json:"dietary_needs"`
	TransportMode      *string          `json:"transport_mode"`
	Days               []domain.DayPlan `json:"days"`
	Stays              []domain.Stay    `json:"stays"`
	Status             *string          `json:"status"`
}

type ItineraryService struct {
	itineraries repository.ItineraryRepository
	enquiries   repository.EnquiryRepository
}

func NewItineraryService(itineraries repository.ItineraryRepository, enquiries repository.EnquiryRepository) *ItineraryService {
	return &ItineraryService{itineraries: itineraries, enquiries: enquiries}
}

// CreateItinerary builds a draft from the enquiry snapshot: traveller counts,
// budget and currency come from the enquiry, destinations default to the
// enquiry locations when the form left them blank.
func (s *ItineraryService) CreateItinerary(ctx context.Context, enquiryID string, input CreateItineraryInput) (*domain.Itinerary, error) {
	enquiry, err := s.enquiries.GetByID(ctx, enquiryID)
	if err != nil {
		return nil, err
	}

	itinerary := &domain.Itinerary{
		ID:                 uuid.NewString(),
		EnquiryID:          enquiry.ID,
		Title:              input.Title,
		Destinations:       input.Destinations,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		NumberOfTravellers: enquiry.NumberOfTravellers,
		NumberOfKids:       enquiry.NumberOfKids,
		Budget:             enquiry.Budget,
		Currency:           enquiry.Currency,
		ActivityPreference: input.ActivityPreference,
		HotelPreference:    input.HotelPreference,
		MealPreference:     input.MealPreference,
		DietaryNeeds:       input.DietaryNeeds,
		TransportMode:      input.TransportMode,
		Days:               input.Days,
		Stays:              input.Stays,
		Status:             domain.ItineraryStatusDraft,
	}
	if itinerary.Title == "" {
		itinerary.Title = fmt.Sprintf("Trip for %s", enquiry.Name)
	}
	if itinerary.Destinations == "" {
		itinerary.Destinations = enquiry.Locations
	}

	if err := s.itineraries.Create(ctx, itinerary); err != nil {
		return nil, err
	}
	return itinerary, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error) {
	return s.itineraries.GetByID(ctx, id)
}

func (s *ItineraryService) ListByEnquiry(ctx context.Context, enquiryID string) ([]domain.Itinerary, error) {
	return s.itineraries.ListByEnquiry(ctx, enquiryID)
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, id string, input UpdateItineraryInput) (*domain.Itinerary, error) {
	itinerary, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		itinerary.Title = *input.Title
	}
	if input.Destinations != nil {
		itinerary.Destinations = *input.Destinations
	}
	if input.StartDate != nil {
		itinerary.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		itinerary.EndDate = *input.EndDate
	}
	if input.NumberOfTravellers != nil {
		itinerary.NumberOfTravellers = *input.NumberOfTravellers
	}
	if input.NumberOfKids != nil {
		itinerary.NumberOfKids = *input.NumberOfKids
	}
	if input.Budget != nil {
		itinerary.Budget = *input.Budget
	}
	if input.Currency != nil {
		itinerary.Currency = *input.Currency
	}
	if input.ActivityPreference != nil {
		itinerary.ActivityPreference = *input.ActivityPreference
	}
	if input.HotelPreference != nil {
		itinerary.HotelPreference = *input.HotelPreference
	}
	if input.MealPreference != nil {
		itinerary.MealPreference = *input.MealPreference
	}
	if input.DietaryNeeds != nil {
		itinerary.DietaryNeeds = *input.DietaryNeeds
	}
	if input.TransportMode != nil {
		itinerary.TransportMode = *input.TransportMode
	}
	if input.Days != nil {
		itinerary.Days = input.Days
	}
	if input.Stays != nil {
		itinerary.Stays = input.Stays
	}
	if input.Status != nil {
		status := domain.ItineraryStatus(*input.Status)
		if status != domain.ItineraryStatusDraft && status != domain.ItineraryStatusFinal {
			return nil, domain.NewValidationError(map[string]string{"status": fmt.Sprintf("unknown itinerary status %q", *input.Status)})
		}
		itinerary.Status = status
	}

	if err := s.itineraries.Update(ctx, itinerary); err != nil {
		return nil, err
	}
	return itinerary, nil
}

var _ ItineraryUseCase = (*ItineraryService)(nil)
