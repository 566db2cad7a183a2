package commission

import (
	"context"
	"strings"

	"tripdesk/internal/domain"
	"tripdesk/internal/repository"

	"github.com/google/uuid"
)

type CommissionUseCase interface {
	UpsertCommission(ctx context.Context, input UpsertCommissionInput) (*domain.Commission, error)
	ListCommissions(ctx context.Context, enquiryID string) ([]domain.Commission, error)
}

type UpsertCommissionInput struct {
	EnquiryID      string  `json:"enquiry_id"`
	DmcID          string  `json:"dmc_id"`
	QuotedAmount   float64 `json:"quoted_amount"`
	CommissionRate float64 `json:"commission_rate"`
	Currency       string  `json:"currency"`
	Notes          string  `json:"notes"`
}

type CommissionService struct {
	commissions repository.CommissionRepository
	enquiries   repository.EnquiryRepository
}

func NewCommissionService(commissions repository.CommissionRepository, enquiries repository.EnquiryRepository) *CommissionService {
	return &CommissionService{commissions: commissions, enquiries: enquiries}
}

// UpsertCommission writes the ledger entry for one enquiry-DMC pair. Repeated
// calls for the same pair keep a single record carrying the latest amounts.
func (s *CommissionService) UpsertCommission(ctx context.Context, input UpsertCommissionInput) (*domain.Commission, error) {
	fields := map[string]string{}
	if strings.TrimSpace(input.EnquiryID) == "" {
		fields["enquiry_id"] = "enquiry_id is required"
	}
	if strings.TrimSpace(input.DmcID) == "" {
		fields["dmc_id"] = "dmc_id is required"
	}
	if input.QuotedAmount < 0 {
		fields["quoted_amount"] = "quoted_amount cannot be negative"
	}
	if input.CommissionRate < 0 || input.CommissionRate > 100 {
		fields["commission_rate"] = "commission_rate must be between 0 and 100"
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	if _, err := s.enquiries.GetByID(ctx, input.EnquiryID); err != nil {
		return nil, err
	}

	commission := &domain.Commission{
		ID:             uuid.NewString(),
		EnquiryID:      input.EnquiryID,
		DmcID:          input.DmcID,
		QuotedAmount:   input.QuotedAmount,
		CommissionRate: input.CommissionRate,
		CommissionDue:  input.QuotedAmount * input.CommissionRate / 100,
		Currency:       input.Currency,
		Notes:          input.Notes,
	}
	if err := s.commissions.Upsert(ctx, commission); err != nil {
		return nil, err
	}
	return commission, nil
}

func (s *CommissionService) ListCommissions(ctx context.Context, enquiryID string) ([]domain.Commission, error) {
	return s.commissions.ListByEnquiry(ctx, enquiryID)
}

var _ CommissionUseCase = (*CommissionService)(nil)
