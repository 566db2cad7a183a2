package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/service/board"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBoardUseCase is a mock implementation of board.BoardUseCase
type MockBoardUseCase struct {
	mock.Mock
}

func (m *MockBoardUseCase) LoadBoard(ctx context.Context, search string) ([]board.Column, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]board.Column), args.Error(1)
}

func (m *MockBoardUseCase) ListEnquiries(ctx context.Context, search string, status domain.Stage) ([]domain.Enquiry, error) {
	args := m.Called(ctx, search, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enquiry), args.Error(1)
}

func (m *MockBoardUseCase) AddEnquiry(ctx context.Context, input board.CreateEnquiryInput) (*domain.Enquiry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockBoardUseCase) GetEnquiry(ctx context.Context, id string) (*domain.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockBoardUseCase) UpdateEnquiry(ctx context.Context, id string, patch domain.EnquiryPatch) (*domain.Enquiry, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockBoardUseCase) MoveEnquiry(ctx context.Context, id string, from, to domain.Stage) (*domain.Enquiry, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockBoardUseCase) Summary(ctx context.Context) ([]board.StageCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]board.StageCount), args.Error(1)
}

func (m *MockBoardUseCase) NotifyIdleEnquiries(ctx context.Context, idleFor time.Duration) ([]domain.Enquiry, error) {
	args := m.Called(ctx, idleFor)
	return args.Get(0).([]domain.Enquiry), args.Error(1)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestEnquiryHandler_create(t *testing.T) {
	mockService := &MockBoardUseCase{}
	handler := NewEnquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/enquiries", `{"name":"Jane Doe","phone":"1234567890","email":"jane@x.com","locations":"Lisbon"}`)

	created := &domain.Enquiry{ID: "enq-1", Name: "Jane Doe", Phone: "1234567890", Email: "jane@x.com", Status: domain.StageEnquiry}

	mockService.On("AddEnquiry", c.Request.Context(), mock.AnythingOfType("board.CreateEnquiryInput")).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp enquiryResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "enq-1", resp.ID)
	assert.Equal(t, string(domain.StageEnquiry), resp.Status)

	mockService.AssertExpectations(t)
}

func TestEnquiryHandler_create_validation(t *testing.T) {
	mockService := &MockBoardUseCase{}
	handler := NewEnquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/enquiries", `{"name":"","phone":"12","email":"nope"}`)

	verr := domain.NewValidationError(map[string]string{
		"name":  "name is required",
		"phone": "phone must have at least 7 digits",
		"email": "email is not valid",
	})
	mockService.On("AddEnquiry", c.Request.Context(), mock.AnythingOfType("board.CreateEnquiryInput")).Return(nil, verr)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "phone")
	assert.Contains(t, resp.Fields, "email")
}

func TestEnquiryHandler_get_notFound(t *testing.T) {
	mockService := &MockBoardUseCase{}
	handler := NewEnquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/enquiries/missing", nil)

	mockService.On("GetEnquiry", c.Request.Context(), "missing").Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestEnquiryHandler_update_rejectsStatus(t *testing.T) {
	mockService := &MockBoardUseCase{}
	handler := NewEnquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "enq-1"}}
	c.Request = jsonRequest("PATCH", "/enquiries/enq-1", `{"status":"completed"}`)

	handler.update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UpdateEnquiry")
}

func TestEnquiryHandler_move(t *testing.T) {
	mockService := &MockBoardUseCase{}
	handler := NewEnquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "enq-1"}}
	c.Request = jsonRequest("POST", "/enquiries/enq-1/move", `{"from":"enquiry","to":"itinerary_creation"}`)

	moved := &domain.Enquiry{ID: "enq-1", Name: "Jane Doe", Status: domain.StageItineraryCreation}

	mockService.On("MoveEnquiry", c.Request.Context(), "enq-1", domain.StageEnquiry, domain.StageItineraryCreation).Return(moved, nil)

	handler.move(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp enquiryResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.StageItineraryCreation), resp.Status)

	mockService.AssertExpectations(t)
}

func TestEnquiryHandler_move_staleFrom(t *testing.T) {
	mockService := &MockBoardUseCase{}
	handler := NewEnquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "enq-1"}}
	c.Request = jsonRequest("POST", "/enquiries/enq-1/move", `{"from":"enquiry","to":"itinerary_creation"}`)

	mockService.On("MoveEnquiry", c.Request.Context(), "enq-1", domain.StageEnquiry, domain.StageItineraryCreation).
		Return(nil, domain.ErrStageConflict)

	handler.move(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestEnquiryHandler_move_unknownStage(t *testing.T) {
	mockService := &MockBoardUseCase{}
	handler := NewEnquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "enq-1"}}
	c.Request = jsonRequest("POST", "/enquiries/enq-1/move", `{"from":"enquiry","to":"archived"}`)

	mockService.On("MoveEnquiry", c.Request.Context(), "enq-1", domain.StageEnquiry, domain.Stage("archived")).
		Return(nil, domain.ErrUnknownStage)

	handler.move(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}
