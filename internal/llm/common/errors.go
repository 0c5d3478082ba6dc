package common

import (
	"fmt"
	"net/http"
)

// ConfigurationError means a required setting is missing or invalid
// no network call is made when this is returned
type ConfigurationError struct {
	Key string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error (%s): %v", e.Key, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// TransportError wraps a failure to reach the endpoint (DNS, TLS, refused, timeout)
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is returned when the endpoint answers with a non-2xx status
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API request failed with status %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// DeserializationError means the response body did not match the expected shape
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to decode completion response: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }
