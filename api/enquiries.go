package api

import (
	"net/http"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/service/board"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	service board.BoardUseCase
}

func NewEnquiryHandler(service board.BoardUseCase) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

func (h *EnquiryHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.PATCH("/:id", h.update)
	router.POST("/:id/move", h.move)
}

type enquiryResponse struct {
	ID                 string   `json:"id"`
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
	Status             string   `json:"status"`
	EnquiryDate        string   `json:"enquiry_date"`
}

func toEnquiryResponse(e *domain.Enquiry) enquiryResponse {
	return enquiryResponse{
		ID:                 e.ID,
		Name:               e.Name,
		Phone:              e.Phone,
		Email:              e.Email,
		Locations:          e.Locations,
		TourType:           e.TourType,
		EstimatedDates:     e.EstimatedDates,
		Currency:           e.Currency,
		Budget:             e.Budget,
		NumberOfTravellers: e.NumberOfTravellers,
		NumberOfKids:       e.NumberOfKids,
		TravelingWithPets:  e.TravelingWithPets,
		PickupLocation:     e.PickupLocation,
		DropLocation:       e.DropLocation,
		MustSeeSpots:       e.MustSeeSpots,
		PacePreference:     e.PacePreference,
		FlightsRequired:    e.FlightsRequired,
		Notes:              e.Notes,
		Tags:               e.Tags,
		LeadSource:         e.LeadSource,
		AssignedStaff:      e.AssignedStaff,
		PointOfContact:     e.PointOfContact,
		Status:             string(e.Status),
		EnquiryDate:        e.EnquiryDate.Format(time.RFC3339),
	}
}

func toEnquiryResponses(enquiries []domain.Enquiry) []enquiryResponse {
	out := make([]enquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		out = append(out, toEnquiryResponse(&enquiries[i]))
	}
	return out
}

func (h *EnquiryHandler) list(c *gin.Context) {
	enquiries, err := h.service.ListEnquiries(c.Request.Context(), c.Query("search"), domain.Stage(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEnquiryResponses(enquiries))
}

func (h *EnquiryHandler) create(c *gin.Context) {
	var req board.CreateEnquiryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enquiry, err := h.service.AddEnquiry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEnquiryResponse(enquiry))
}

func (h *EnquiryHandler) get(c *gin.Context) {
	enquiry, err := h.service.GetEnquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEnquiryResponse(enquiry))
}

type updateEnquiryRequest struct {
	Name               *string  `json:"name"`
	Phone              *string  `json:"phone"`
	Email              *string  `json:"email"`
	Locations          *string  `json:"locations"`
	TourType           *string  `json:"tour_type"`
	EstimatedDates     *string  `json:"estimated_dates"`
	Currency           *string  `json:"currency"`
	Budget             *float64 `json:"budget"`
	NumberOfTravellers *int     `json:"number_of_travellers"`
	NumberOfKids       *int     `json:"number_of_kids"`
	TravelingWithPets  *bool    `json:"traveling_with_pets"`
	PickupLocation     *string  `json:"pickup_location"`
	DropLocation       *string  `json:"drop_location"`
	MustSeeSpots       *string  `json:"must_see_spots"`
	PacePreference     *string  `json:"pace_preference"`
	FlightsRequired    *bool    `json:"flights_required"`
	Notes              *string  `json:"notes"`
	Tags               []string `json:"tags"`
	LeadSource         *string  `json:"lead_source"`
	AssignedStaff      *string  `json:"assigned_staff"`
	PointOfContact     *string  `json:"point_of_contact"`
	Status             *string  `json:"status"`
}

func (h *EnquiryHandler) update(c *gin.Context) {
	var req updateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status cannot be patched; use the move endpoint"})
		return
	}

	enquiry, err := h.service.UpdateEnquiry(c.Request.Context(), c.Param("id"), domain.EnquiryPatch{
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              req.Email,
		Locations:          req.Locations,
		TourType:           req.TourType,
		EstimatedDates:     req.EstimatedDates,
		Currency:           req.Currency,
		Budget:             req.Budget,
		NumberOfTravellers: req.NumberOfTravellers,
		NumberOfKids:       req.NumberOfKids,
		TravelingWithPets:  req.TravelingWithPets,
		PickupLocation:     req.PickupLocation,
		DropLocation:       req.DropLocation,
		MustSeeSpots:       req.MustSeeSpots,
		PacePreference:     req.PacePreference,
		FlightsRequired:    req.FlightsRequired,
		Notes:              req.Notes,
		Tags:               req.Tags,
		LeadSource:         req.LeadSource,
		AssignedStaff:      req.AssignedStaff,
		PointOfContact:     req.PointOfContact,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEnquiryResponse(enquiry))
}

type moveEnquiryRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (h *EnquiryHandler) move(c *gin.Context) {
	var req moveEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enquiry, err := h.service.MoveEnquiry(c.Request.Context(), c.Param("id"), domain.Stage(req.From), domain.Stage(req.To))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEnquiryResponse(enquiry))
}
