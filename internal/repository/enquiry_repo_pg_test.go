package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewEnquiryRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewEnquiryRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewItineraryRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewItineraryRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewFeedbackRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewFeedbackRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewSentItineraryRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewSentItineraryRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewCommissionRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewCommissionRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewPaymentMethodRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewPaymentMethodRepository(pool)
	assert.NotNil(t, repo)
}
