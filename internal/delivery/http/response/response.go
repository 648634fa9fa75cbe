// Package response writes the JSON bodies of the HTTP API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request. Details are set only for
// validation failures and unknown skills.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse is a success body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// RescuerResponse is the body of a successful rescuer registration.
type RescuerResponse struct {
	Message string `json:"message"`
	Rescuer any    `json:"rescuer"`
}

// UserResponse is the body of a successful login.
type UserResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// SessionResponse is the body of a session check.
type SessionResponse struct {
	Message string `json:"message"`
	Session any    `json:"session"`
}

// Message returns a success response with only a message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error returns an error response. Details are dropped for 5xx and 401 responses.
func Error(c echo.Context, statusCode int, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{Error: message, Details: details})
}

// InternalServerError returns a generic 500 error.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Internal server error", nil)
}
