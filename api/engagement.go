package api

import (
	"net/http"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/service/engagement"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	service engagement.EngagementUseCase
}

func NewEngagementHandler(service engagement.EngagementUseCase) *EngagementHandler {
	return &EngagementHandler{service: service}
}

func (h *EngagementHandler) RegisterFeedback(router *gin.RouterGroup) {
	router.POST("/", h.addFeedback)
	router.GET("/", h.listFeedback)
}

func (h *EngagementHandler) RegisterSending(router *gin.RouterGroup) {
	router.POST("/send", h.sendItinerary)
	router.GET("/sent", h.listSent)
}

type feedbackResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	ItineraryID string `json:"itinerary_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func toFeedbackResponse(f *domain.CustomerFeedback) feedbackResponse {
	return feedbackResponse{
		ID:          f.ID,
		CustomerID:  f.CustomerID,
		ItineraryID: f.ItineraryID,
		Type:        f.Type,
		Title:       f.Title,
		Description: f.Description,
		CreatedAt:   f.CreatedAt.Format(time.RFC3339),
	}
}

type sentItineraryResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	ItineraryID string `json:"itinerary_id"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
	Attachment  string `json:"attachment"`
	SentAt      string `json:"sent_at"`
}

func toSentItineraryResponse(s *domain.SentItinerary) sentItineraryResponse {
	return sentItineraryResponse{
		ID:          s.ID,
		CustomerID:  s.CustomerID,
		ItineraryID: s.ItineraryID,
		Email:       s.Email,
		Phone:       s.Phone,
		Notes:       s.Notes,
		Attachment:  s.Attachment,
		SentAt:      s.SentAt.Format(time.RFC3339),
	}
}

func (h *EngagementHandler) addFeedback(c *gin.Context) {
	var req engagement.FeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.service.AddFeedback(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFeedbackResponse(feedback))
}

func (h *EngagementHandler) listFeedback(c *gin.Context) {
	customerID := c.Query("customer_id")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id is required"})
		return
	}

	feedback, err := h.service.ListFeedback(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]feedbackResponse, 0, len(feedback))
	for i := range feedback {
		out = append(out, toFeedbackResponse(&feedback[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *EngagementHandler) sendItinerary(c *gin.Context) {
	var req engagement.SendItineraryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.service.SendItinerary(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSentItineraryResponse(record))
}

func (h *EngagementHandler) listSent(c *gin.Context) {
	customerID := c.Query("customer_id")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id is required"})
		return
	}

	records, err := h.service.ListSent(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]sentItineraryResponse, 0, len(records))
	for i := range records {
		out = append(out, toSentItineraryResponse(&records[i]))
	}
	c.JSON(http.StatusOK, out)
}
