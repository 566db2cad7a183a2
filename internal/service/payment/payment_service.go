package payment

import (
	"context"
	"strings"

	"tripdesk/internal/domain"
	"tripdesk/internal/repository"

	"github.com/google/uuid"
)

type PaymentUseCase interface {
	AddPaymentMethod(ctx context.Context, input AddPaymentMethodInput) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, customerID string) ([]domain.PaymentMethod, error)
}

type AddPaymentMethodInput struct {
	EnquiryID  string `json:"enquiry_id"`
	Type       string `json:"type"`
	Provider   string `json:"provider"`
	HolderName string `json:"holder_name"`
	Last4      string `json:"last4"`
	ExpiryMM   int    `json:"expiry_mm"`
	ExpiryYY   int    `json:"expiry_yy"`
	IsDefault  bool   `json:"is_default"`
}

type PaymentService struct {
	methods   repository.PaymentMethodRepository
	enquiries repository.EnquiryRepository
}

func NewPaymentService(methods repository.PaymentMethodRepository, enquiries repository.EnquiryRepository) *PaymentService {
	return &PaymentService{methods: methods, enquiries: enquiries}
}

func (s *PaymentService) AddPaymentMethod(ctx context.Context, input AddPaymentMethodInput) (*domain.PaymentMethod, error) {
	fields := map[string]string{}
	if strings.TrimSpace(input.EnquiryID) == "" {
		fields["enquiry_id"] = "enquiry_id is required"
	}
	if strings.TrimSpace(input.Type) == "" {
		fields["type"] = "type is required"
	}
	if input.Last4 != "" && !isFourDigits(input.Last4) {
		fields["last4"] = "last4 must be exactly 4 digits"
	}
	if input.ExpiryMM < 0 || input.ExpiryMM > 12 {
		fields["expiry_mm"] = "expiry_mm must be between 1 and 12"
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	enquiry, err := s.enquiries.GetByID(ctx, input.EnquiryID)
	if err != nil {
		return nil, err
	}

	method := &domain.PaymentMethod{
		ID:         uuid.NewString(),
		CustomerID: domain.ResolveCustomerID(enquiry.ID),
		Type:       input.Type,
		Provider:   input.Provider,
		HolderName: input.HolderName,
		Last4:      input.Last4,
		ExpiryMM:   input.ExpiryMM,
		ExpiryYY:   input.ExpiryYY,
		IsDefault:  input.IsDefault,
	}
	if err := s.methods.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *PaymentService) ListPaymentMethods(ctx context.Context, customerID string) ([]domain.PaymentMethod, error) {
	return s.methods.ListByCustomer(ctx, customerID)
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var _ PaymentUseCase = (*PaymentService)(nil)
