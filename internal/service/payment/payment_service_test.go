package payment

import (
	"context"
	"testing"
	"time"

	"tripdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, method *domain.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
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

func TestPaymentService_AddPaymentMethod(t *testing.T) {
	mockMethods := &MockPaymentMethodRepository{}
	mockEnquiries := &MockEnquiryRepository{}
	service := NewPaymentService(mockMethods, mockEnquiries)

	ctx := context.Background()
	mockEnquiries.On("GetByID", ctx, "enq-1").Return(&domain.Enquiry{ID: "enq-1"}, nil).Once()
	mockMethods.On("Create", ctx, mock.AnythingOfType("*domain.PaymentMethod")).Return(nil).Once()

	method, err := service.AddPaymentMethod(ctx, AddPaymentMethodInput{
		EnquiryID:  "enq-1",
		Type:       "card",
		Provider:   "visa",
		HolderName: "Jane Doe",
		Last4:      "4242",
		ExpiryMM:   9,
		ExpiryYY:   28,
		IsDefault:  true,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, method.ID)
	assert.Equal(t, domain.ResolveCustomerID("enq-1"), method.CustomerID)
	assert.True(t, method.IsDefault)

	mockMethods.AssertExpectations(t)
	mockEnquiries.AssertExpectations(t)
}

func TestPaymentService_AddPaymentMethod_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input AddPaymentMethodInput
		field string
	}{
		{
			name:  "missing enquiry id",
			input: AddPaymentMethodInput{Type: "card"},
			field: "enquiry_id",
		},
		{
			name:  "missing type",
			input: AddPaymentMethodInput{EnquiryID: "enq-1"},
			field: "type",
		},
		{
			name:  "bad last4",
			input: AddPaymentMethodInput{EnquiryID: "enq-1", Type: "card", Last4: "42"},
			field: "last4",
		},
		{
			name:  "bad expiry month",
			input: AddPaymentMethodInput{EnquiryID: "enq-1", Type: "card", ExpiryMM: 13},
			field: "expiry_mm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMethods := &MockPaymentMethodRepository{}
			mockEnquiries := &MockEnquiryRepository{}
			service := NewPaymentService(mockMethods, mockEnquiries)

			method, err := service.AddPaymentMethod(context.Background(), tt.input)

			assert.Nil(t, method)
			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			mockMethods.AssertNotCalled(t, "Create")
		})
	}
}

func TestPaymentService_AddPaymentMethod_MissingEnquiry(t *testing.T) {
	mockMethods := &MockPaymentMethodRepository{}
	mockEnquiries := &MockEnquiryRepository{}
	service := NewPaymentService(mockMethods, mockEnquiries)

	ctx := context.Background()
	mockEnquiries.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

	method, err := service.AddPaymentMethod(ctx, AddPaymentMethodInput{EnquiryID: "missing", Type: "card"})

	assert.Nil(t, method)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockMethods.AssertNotCalled(t, "Create")
}
