package domain

import "time"

// CustomerFeedback is customer input collected against an itinerary draft.
type CustomerFeedback struct {
	ID          string
	CustomerID  string
	ItineraryID string
	Type        string
	Title       string
	Description string
	CreatedAt   time.Time
}

// SentItinerary records one share/send of an itinerary to a customer. Sending
// never advances the enquiry's pipeline stage.
type SentItinerary struct {
	ID          string
	CustomerID  string
	ItineraryID string
	Email       string
	Phone       string
	Notes       string
	Attachment  string
	SentAt      time.Time
}

// ResolveCustomerID maps an enquiry to its customer identity. There is no
// separate customer record in the pipeline, so the enquiry id doubles as the
// customer id. Every downstream attacher goes through this one mapping.
func ResolveCustomerID(enquiryID string) string {
	return enquiryID
}
