package commission

import (
	"context"
	"testing"
	"time"

	"tripdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) Upsert(ctx context.Context, commission *domain.Commission) error {
	args := m.Called(ctx, commission)
	return args.Error(0)
}

func (m *MockCommissionRepository) ListByEnquiry(ctx context.Context, enquiryID string) ([]domain.Commission, error) {
	args := m.Called(ctx, enquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commission), args.Error(1)
}

type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	args := m.Called(ctx, enquiry)
	return args.Error(0)
}

func (m *MockEnquiryRepository) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) List(ctx context.Context) ([]domain.Enquiry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) Update(ctx context.Context, id string, patch domain.EnquiryPatch) (*domain.Enquiry, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) UpdateStatus(ctx context.Context, id string, from, to domain.Stage) (*domain.Enquiry, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) CountByStage(ctx context.Context) (map[domain.Stage]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.Stage]int), args.Error(1)
}

func (m *MockEnquiryRepository) ListIdleSince(ctx context.Context, cutoff time.Time) ([]domain.Enquiry, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Enquiry), args.Error(1)
}

func TestCommissionService_UpsertCommission_ComputesDue(t *testing.T) {
	mockCommissions := &MockCommissionRepository{}
	mockEnquiries := &MockEnquiryRepository{}
	service := NewCommissionService(mockCommissions, mockEnquiries)

	ctx := context.Background()
	mockEnquiries.On("GetByID", ctx, "enq-1").Return(&domain.Enquiry{ID: "enq-1"}, nil).Once()
	mockCommissions.On("Upsert", ctx, mock.AnythingOfType("*domain.Commission")).Return(nil).Once()

	commission, err := service.UpsertCommission(ctx, UpsertCommissionInput{
		EnquiryID:      "enq-1",
		DmcID:          "dmc-lisbon",
		QuotedAmount:   4800,
		CommissionRate: 12.5,
		Currency:       "EUR",
	})

	assert.NoError(t, err)
	assert.InDelta(t, 600.0, commission.CommissionDue, 0.001)
	assert.Equal(t, "EUR", commission.Currency)

	mockCommissions.AssertExpectations(t)
	mockEnquiries.AssertExpectations(t)
}

func TestCommissionService_UpsertCommission_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input UpsertCommissionInput
		field string
	}{
		{
			name:  "missing enquiry id",
			input: UpsertCommissionInput{DmcID: "dmc-1", QuotedAmount: 100, CommissionRate: 10},
			field: "enquiry_id",
		},
		{
			name:  "missing dmc id",
			input: UpsertCommissionInput{EnquiryID: "enq-1", QuotedAmount: 100, CommissionRate: 10},
			field: "dmc_id",
		},
		{
			name:  "negative amount",
			input: UpsertCommissionInput{EnquiryID: "enq-1", DmcID: "dmc-1", QuotedAmount: -1, CommissionRate: 10},
			field: "quoted_amount",
		},
		{
			name:  "rate above 100",
			input: UpsertCommissionInput{EnquiryID: "enq-1", DmcID: "dmc-1", QuotedAmount: 100, CommissionRate: 150},
			field: "commission_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCommissions := &MockCommissionRepository{}
			mockEnquiries := &MockEnquiryRepository{}
			service := NewCommissionService(mockCommissions, mockEnquiries)

			commission, err := service.UpsertCommission(context.Background(), tt.input)

			assert.Nil(t, commission)
			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			mockCommissions.AssertNotCalled(t, "Upsert")
			mockEnquiries.AssertNotCalled(t, "GetByID")
		})
	}
}

func TestCommissionService_UpsertCommission_MissingEnquiry(t *testing.T) {
	mockCommissions := &MockCommissionRepository{}
	mockEnquiries := &MockEnquiryRepository{}
	service := NewCommissionService(mockCommissions, mockEnquiries)

	ctx := context.Background()
	mockEnquiries.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

	commission, err := service.UpsertCommission(ctx, UpsertCommissionInput{
		EnquiryID:      "missing",
		DmcID:          "dmc-1",
		QuotedAmount:   100,
		CommissionRate: 10,
	})

	assert.Nil(t, commission)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockCommissions.AssertNotCalled(t, "Upsert")
}

func TestCommissionService_UpsertCommission_SamePairStaysSingleRecord(t *testing.T) {
	mockCommissions := &MockCommissionRepository{}
	mockEnquiries := &MockEnquiryRepository{}
	service := NewCommissionService(mockCommissions, mockEnquiries)

	ctx := context.Background()
	mockEnquiries.On("GetByID", ctx, "enq-1").Return(&domain.Enquiry{ID: "enq-1"}, nil).Twice()
	mockCommissions.On("Upsert", ctx, mock.AnythingOfType("*domain.Commission")).Return(nil).Twice()

	first, err := service.UpsertCommission(ctx, UpsertCommissionInput{
		EnquiryID: "enq-1", DmcID: "dmc-1", QuotedAmount: 1000, CommissionRate: 10,
	})
	assert.NoError(t, err)

	second, err := service.UpsertCommission(ctx, UpsertCommissionInput{
		EnquiryID: "enq-1", DmcID: "dmc-1", QuotedAmount: 1200, CommissionRate: 10,
	})
	assert.NoError(t, err)

	assert.Equal(t, first.EnquiryID, second.EnquiryID)
	assert.Equal(t, first.DmcID, second.DmcID)
	assert.InDelta(t, 120.0, second.CommissionDue, 0.001)
	mockCommissions.AssertExpectations(t)
}
