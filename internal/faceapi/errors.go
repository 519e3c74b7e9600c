package faceapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRemoteCall is wrapped by every error Detect returns.
var ErrRemoteCall = errors.New("face detection call failed")

// RemoteError is a non-2xx response from the face service.
type RemoteError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code and Message come from the service's error body.
	// When the body is not the documented shape, Code is empty and Message
	// holds the status text.
	Code    string
	Message string

	// RequestID identifies the call in service-side logs.
	RequestID string
}

// Error implements error.
func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s: service returned %d", ErrRemoteCall, e.StatusCode)
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += " [request id " + e.RequestID + "]"
	}
	return msg
}

// Unwrap makes errors.Is(err, ErrRemoteCall) true for a *RemoteError.
func (e *RemoteError) Unwrap() error {
	return ErrRemoteCall
}

// IsUnauthorized reports whether the service rejected the key or endpoint.
func (e *RemoteError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
