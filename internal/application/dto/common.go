package dto

// ErrorResponse HTTP error body. Message embeds the offending field where
// one is known (e.g. "Email already exists").
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmation body for deletions.
type MessageResponse struct {
	Message string `json:"message"`
}
