package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripdesk/internal/domain"
	"tripdesk/internal/service/board"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBoardHandler_load(t *testing.T) {
	mockService := &MockBoardUseCase{}
	handler := NewBoardHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/board?search=lisbon", nil)

	stages := domain.Stages()
	columns := make([]board.Column, 0, len(stages))
	for _, stage := range stages {
		columns = append(columns, board.Column{Stage: stage, Enquiries: []domain.Enquiry{}})
	}
	columns[0].Enquiries = []domain.Enquiry{{ID: "enq-1", Name: "Jane Doe", Locations: "Lisbon", Status: domain.StageEnquiry}}

	mockService.On("LoadBoard", c.Request.Context(), "lisbon").Return(columns, nil)

	handler.load(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []columnResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, len(stages))
	assert.Equal(t, stages[0].ID, resp[0].Stage.ID)
	assert.Len(t, resp[0].Enquiries, 1)

	mockService.AssertExpectations(t)
}

func TestBoardHandler_summary(t *testing.T) {
	mockService := &MockBoardUseCase{}
	handler := NewBoardHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/board/summary", nil)

	stages := domain.Stages()
	summary := make([]board.StageCount, 0, len(stages))
	for _, stage := range stages {
		summary = append(summary, board.StageCount{Stage: stage, Count: 0})
	}
	summary[0].Count = 3

	mockService.On("Summary", c.Request.Context()).Return(summary, nil)

	handler.summary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []board.StageCount
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, len(stages))
	assert.Equal(t, 3, resp[0].Count)

	mockService.AssertExpectations(t)
}
