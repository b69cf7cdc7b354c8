package handler

import "github.com/fridgetofork/pantry-admin/internal/interfaces/http/dto"

// The types below only describe the envelope in swag annotations. Handlers
// write dto.Response.

// APIResponse is a successful envelope around data of type T.
type APIResponse[T any] struct {
	Success bool      `json:"success" example:"true"`
	Data    T         `json:"data"`
	Meta    *dto.Meta `json:"meta,omitempty"`
}

// ErrorResponse is the envelope of every 4xx and 5xx answer.
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error"`
}
