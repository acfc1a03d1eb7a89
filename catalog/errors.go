package catalog

import (
	"fmt"
	"net/http"
)

// APIError is the error returned for any non-2xx response from the catalog API. The
// response body is retained verbatim for logging/troubleshooting.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Status == http.StatusForbidden {
		return fmt.Sprintf("permission denied (%v) - check the 'Data Steward' role for the governance domain", e.Status)
	}

	return fmt.Sprintf("catalog request failed with status %v (%s)", e.Status, e.Body)
}

// AuthError wraps a failed bearer token acquisition.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication error (%v)", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
