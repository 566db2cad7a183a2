package domain

type Stage string

const (
	StageEnquiry            Stage = "enquiry"
	StageItineraryCreation  Stage = "itinerary_creation"
	StageCustomerFeedback   Stage = "customer_feedback"
	StageItineraryConfirmed Stage = "itinerary_confirmed"
	StageDMCQuotation       Stage = "dmc_quotation"
	StagePriceFinalization  Stage = "price_finalization"
	StageBookingRequest     Stage = "booking_request"
	StageBookingProgress    Stage = "booking_progress"
	StagePaymentFees        Stage = "payment_fees"
	StageTripInProgress     Stage = "trip_in_progress"
	StageCompleted          Stage = "completed"
)

// StageInfo carries the display metadata the board UI renders per column.
type StageInfo struct {
	ID    Stage  `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var stageCatalog = []StageInfo{
	{ID: StageEnquiry, Title: "Enquiry", Icon: "inbox", Color: "#94a3b8"},
	{ID: StageItineraryCreation, Title: "Itinerary Creation", Icon: "map", Color: "#38bdf8"},
	{ID: StageCustomerFeedback, Title: "Customer Feedback", Icon: "message-circle", Color: "#818cf8"},
	{ID: StageItineraryConfirmed, Title: "Itinerary Confirmed", Icon: "check-circle", Color: "#34d399"},
	{ID: StageDMCQuotation, Title: "DMC Quotation", Icon: "file-text", Color: "#fbbf24"},
	{ID: StagePriceFinalization, Title: "Price Finalization", Icon: "tag", Color: "#f97316"},
	{ID: StageBookingRequest, Title: "Booking Request", Icon: "send", Color: "#a78bfa"},
	{ID: StageBookingProgress, Title: "Booking In Progress", Icon: "loader", Color: "#60a5fa"},
	{ID: StagePaymentFees, Title: "Payment & Fees", Icon: "credit-card", Color: "#f472b6"},
	{ID: StageTripInProgress, Title: "Trip In Progress", Icon: "plane", Color: "#2dd4bf"},
	{ID: StageCompleted, Title: "Completed", Icon: "flag", Color: "#4ade80"},
}

// Stages returns the pipeline stages in board order. The catalog is fixed;
// stages are never added or removed at runtime.
func Stages() []StageInfo {
	out := make([]StageInfo, len(stageCatalog))
	copy(out, stageCatalog)
	return out
}

func ValidStage(s Stage) bool {
	for _, info := range stageCatalog {
		if info.ID == s {
			return true
		}
	}
	return false
}
