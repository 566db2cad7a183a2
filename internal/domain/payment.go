package domain

import "time"

// PaymentMethod is a stored payment reference for a customer. Only a masked
// reference is kept; charging is handled elsewhere.
type PaymentMethod struct {
	ID         string
	CustomerID string
	Type       string
	Provider   string
	HolderName string
	Last4      string
	ExpiryMM   int
	ExpiryYY   int
	IsDefault  bool
	CreatedAt  time.Time
}
