package models

// Request is a query against the comment catalog. It is built from HTTP query
// parameters or CLI flags.
type Request struct {
	Category string `json:"category,omitempty"`
	Mode     string `json:"mode,omitempty"`

	// MinConfidence is kept raw so the dispatcher can reject malformed values
	// with a 400 instead of the caller silently dropping them.
	MinConfidence string `json:"min_confidence,omitempty"`
}

// Response is the dispatcher's output: an HTTP-style status and a body ready
// for encoding.
type Response struct {
	Status int         `json:"status"`
	Body   interface{} `json:"body"`
}

// NewErrorResponse creates a response carrying a structured error body.
func NewErrorResponse(status int, message string) Response {
	return Response{
		Status: status,
		Body:   ErrorResponse{Error: message},
	}
}
