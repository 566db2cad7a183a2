package api

import (
	"net/http"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/service/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service payment.PaymentUseCase
}

func NewPaymentHandler(service payment.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.add)
	router.GET("/", h.list)
}

type paymentMethodResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Type       string `json:"type"`
	Provider   string `json:"provider"`
	HolderName string `json:"holder_name"`
	Last4      string `json:"last4"`
	ExpiryMM   int    `json:"expiry_mm"`
	ExpiryYY   int    `json:"expiry_yy"`
	IsDefault  bool   `json:"is_default"`
	CreatedAt  string `json:"created_at"`
}

func toPaymentMethodResponse(m *domain.PaymentMethod) paymentMethodResponse {
	return paymentMethodResponse{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Type:       m.Type,
		Provider:   m.Provider,
		HolderName: m.HolderName,
		Last4:      m.Last4,
		ExpiryMM:   m.ExpiryMM,
		ExpiryYY:   m.ExpiryYY,
		IsDefault:  m.IsDefault,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}

func (h *PaymentHandler) add(c *gin.Context) {
	var req payment.AddPaymentMethodInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := h.service.AddPaymentMethod(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPaymentMethodResponse(method))
}

func (h *PaymentHandler) list(c *gin.Context) {
	customerID := c.Query("customer_id")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id is required"})
		return
	}

	methods, err := h.service.ListPaymentMethods(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]paymentMethodResponse, 0, len(methods))
	for i := range methods {
		out = append(out, toPaymentMethodResponse(&methods[i]))
	}
	c.JSON(http.StatusOK, out)
}
