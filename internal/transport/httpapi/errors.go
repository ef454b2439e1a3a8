package httpapi

import "fmt"

// APIError is a non-2xx response from the storefront API. The status
// code is kept for diagnostics but the SDK treats every APIError the
// same: the call failed and state was left unchanged.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
