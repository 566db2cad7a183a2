package api

import (
	"net/http"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/service/itinerary"

	"github.com/gin-gonic/gin"
)

type ItineraryHandler struct {
	service itinerary.ItineraryUseCase
}

func NewItineraryHandler(service itinerary.ItineraryUseCase) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

func (h *ItineraryHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
}

// RegisterEnquiryRoutes attaches the per-enquiry listing under the enquiries
// group.
func (h *ItineraryHandler) RegisterEnquiryRoutes(router *gin.RouterGroup) {
	router.GET("/:id/itineraries", h.listByEnquiry)
}

type createItineraryRequest struct {
	EnquiryID string `json:"enquiry_id"`
	itinerary.CreateItineraryInput
}

type itineraryResponse struct {
	ID                 string           `json:"id"`
	EnquiryID          string           `json:"enquiry_id"`
	Title              string           `json:"title"`
	Destinations       string           `json:"destinations"`
	StartDate          string           `json:"start_date"`
	EndDate            string           `json:"end_date"`
	NumberOfTravellers int              `json:"number_of_travellers"`
	NumberOfKids       int              `json:"number_of_kids"`
	Budget             float64          `json:"budget"`
	Currency           string           `json:"currency"`
	ActivityPreference string           `json:"activity_preference"`
	HotelPreference    string           `json:"hotel_preference"`
	MealPreference     string           `json:"meal_preference"`
	DietaryNeeds       string           `json:"dietary_needs"`
	TransportMode      string           `json:"transport_mode"`
	Days               []domain.DayPlan `json:"days"`
	Stays              []domain.Stay    `json:"stays"`
	Status             string           `json:"status"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

func toItineraryResponse(it *domain.Itinerary) itineraryResponse {
	return itineraryResponse{
		ID:                 it.ID,
		EnquiryID:          it.EnquiryID,
		Title:              it.Title,
		Destinations:       it.Destinations,
		StartDate:          it.StartDate,
		EndDate:            it.EndDate,
		NumberOfTravellers: it.NumberOfTravellers,
		NumberOfKids:       it.NumberOfKids,
		Budget:             it.Budget,
		Currency:           it.Currency,
		ActivityPreference: it.ActivityPreference,
		HotelPreference:    it.HotelPreference,
		MealPreference:     it.MealPreference,
		DietaryNeeds:       it.DietaryNeeds,
		TransportMode:      it.TransportMode,
		Days:               it.Days,
		Stays:              it.Stays,
		Status:             string(it.Status),
		CreatedAt:          it.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          it.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *ItineraryHandler) create(c *gin.Context) {
	var req createItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EnquiryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enquiry_id is required"})
		return
	}

	it, err := h.service.CreateItinerary(c.Request.Context(), req.EnquiryID, req.CreateItineraryInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toItineraryResponse(it))
}

func (h *ItineraryHandler) get(c *gin.Context) {
	it, err := h.service.GetItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItineraryResponse(it))
}

func (h *ItineraryHandler) update(c *gin.Context) {
	var req itinerary.UpdateItineraryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := h.service.UpdateItinerary(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItineraryResponse(it))
}

func (h *ItineraryHandler) listByEnquiry(c *gin.Context) {
	itineraries, err := h.service.ListByEnquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]itineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, toItineraryResponse(&itineraries[i]))
	}
	c.JSON(http.StatusOK, out)
}
