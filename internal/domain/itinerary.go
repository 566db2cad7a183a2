package domain

import "time"

type ItineraryStatus string

const (
	ItineraryStatusDraft ItineraryStatus = "draft"
	ItineraryStatusFinal ItineraryStatus = "final"
)

// Itinerary is a trip plan built from an enquiry snapshot. Its status is
// tracked independently of the parent enquiry's pipeline stage.
type Itinerary struct {
	ID                 string
	EnquiryID          string
	Title              string
	Destinations       string
	StartDate          string
	EndDate            string
	NumberOfTravellers int
	NumberOfKids       int
	Budget             float64
	Currency           string
	ActivityPreference string
	HotelPreference    string
	MealPreference     string
	DietaryNeeds       string
	TransportMode      string
	Days               []DayPlan
	Stays              []Stay
	Status             ItineraryStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DayPlan is one entry of the ordered day-by-day schedule.
type DayPlan struct {
	Day           int    `json:"day"`
	Date          string `json:"date"`
	Activities    string `json:"activities"`
	Accommodation string `json:"accommodation"`
	Meals         string `json:"meals"`
}

// Stay is one entry of the ordered accommodation list.
type Stay struct {
	City     string `json:"city"`
	Hotel    string `json:"hotel"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	RoomType string `json:"room_type"`
}
