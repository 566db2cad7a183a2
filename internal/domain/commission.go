package domain

import "time"

// Commission is the agency's earnings record for one enquiry-DMC pairing.
// At most one record exists per (EnquiryID, DmcID) pair.
type Commission struct {
	ID             string
	EnquiryID      string
	DmcID          string
	QuotedAmount   float64
	CommissionRate float64
	CommissionDue  float64
	Currency       string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
