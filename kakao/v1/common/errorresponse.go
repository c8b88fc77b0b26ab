package common

import "fmt"

// APIError is the error body Kakao returns on non-2xx responses.
type APIError struct {
	StatusCode int    `json:"-"`
	Path       string `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"msg"`
	Body       string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("GET %s failed with status code %d: %s (%d)", e.Path, e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("GET %s failed with status code %d: %s", e.Path, e.StatusCode, e.Body)
}
