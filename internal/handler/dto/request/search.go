package request

// LandingSearchRequest carries the landing form. City is validated by
// the usecase, not by binding: a missing city is a user-correctable
// validation failure with its own response, not a malformed request.
type LandingSearchRequest struct {
	EventType string `json:"eventType"`
	City      string `json:"city"`
	Budget    string `json:"budget"`
}
