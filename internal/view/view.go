package view

// ErrorResponse is the envelope for every user-visible failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Error(code, details string) ErrorResponse {
	return ErrorResponse{Error: code, Details: details}
}
