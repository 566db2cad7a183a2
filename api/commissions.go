package api

import (
	"net/http"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/service/commission"

	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	service commission.CommissionUseCase
}

func NewCommissionHandler(service commission.CommissionUseCase) *CommissionHandler {
	return &CommissionHandler{service: service}
}

func (h *CommissionHandler) Register(router *gin.RouterGroup) {
	router.PUT("/", h.upsert)
	router.GET("/", h.list)
}

type commissionResponse struct {
	ID             string  `json:"id"`
	EnquiryID      string  `json:"enquiry_id"`
	DmcID          string  `json:"dmc_id"`
	QuotedAmount   float64 `json:"quoted_amount"`
	CommissionRate float64 `json:"commission_rate"`
	CommissionDue  float64 `json:"commission_due"`
	Currency       string  `json:"currency"`
	Notes          string  `json:"notes"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func toCommissionResponse(cm *domain.Commission) commissionResponse {
	return commissionResponse{
		ID:             cm.ID,
		EnquiryID:      cm.EnquiryID,
		DmcID:          cm.DmcID,
		QuotedAmount:   cm.QuotedAmount,
		CommissionRate: cm.CommissionRate,
		CommissionDue:  cm.CommissionDue,
		Currency:       cm.Currency,
		Notes:          cm.Notes,
		CreatedAt:      cm.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      cm.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *CommissionHandler) upsert(c *gin.Context) {
	var req commission.UpsertCommissionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cm, err := h.service.UpsertCommission(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCommissionResponse(cm))
}

func (h *CommissionHandler) list(c *gin.Context) {
	enquiryID := c.Query("enquiry_id")
	if enquiryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enquiry_id is required"})
		return
	}

	commissions, err := h.service.ListCommissions(c.Request.Context(), enquiryID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]commissionResponse, 0, len(commissions))
	for i := range commissions {
		out = append(out, toCommissionResponse(&commissions[i]))
	}
	c.JSON(http.StatusOK, out)
}
