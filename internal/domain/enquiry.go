package domain

import "time"

// Enquiry is the customer trip request moving through the pipeline. Status is
// always one of the catalog stages; an enquiry sits in exactly one column.
type Enquiry struct {
	ID                 string
	Name               string
	Phone              string
	Email              string
	Locations          string
	TourType           string
	EstimatedDates     string
	Currency           string
	Budget             float64
	NumberOfTravellers int
	NumberOfKids       int
	TravelingWithPets  bool
	PickupLocation     string
	DropLocation       string
	MustSeeSpots       string
	PacePreference     string
	FlightsRequired    bool
	Notes              string
	Tags               []string
	LeadSource         string
	AssignedStaff      string
	PointOfContact     string
	Status             Stage
	EnquiryDate        time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EnquiryPatch holds the editable fields of an enquiry. Nil means "leave
// unchanged". Status is deliberately absent: stage changes go through the
// board move operation so the stage invariant is enforced in one place.
type EnquiryPatch struct {
	Name               *string
	Phone              *string
	Email              *string
	Locations          *string
	TourType           *string
	EstimatedDates     *string
	Currency           *string
	Budget             *float64
	NumberOfTravellers *int
	NumberOfKids       *int
	TravelingWithPets  *bool
	PickupLocation     *string
	DropLocation       *string
	MustSeeSpots       *string
	PacePreference     *string
	FlightsRequired    *bool
	Notes              *string
	Tags               []string
	LeadSource         *string
	AssignedStaff      *string
	PointOfContact     *string
}
