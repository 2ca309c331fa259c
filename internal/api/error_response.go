package api

// ErrorResponse is the error payload every handler returns.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}
