package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Typed sentinels used by flows to branch on remote failures.
var (
	// ErrDuplicateSKU reports that the catalog already holds a product with
	// the submitted SKU.
	ErrDuplicateSKU = errors.New("catalog: sku already in use")
	// ErrNotFound reports that a lookup matched nothing.
	ErrNotFound = errors.New("catalog: not found")
)

// RequestError carries the remote status code and message for a failed call.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("catalog: %s: status %d", e.Op, e.StatusCode)
}

// Code returns the remote HTTP status, or 0 for a nil error.
func (e *RequestError) Code() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

// newRequestError builds a RequestError from a non-2xx response body,
// extracting the remote "message" field when the body is JSON.
func newRequestError(op string, status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	return &RequestError{Op: op, StatusCode: status, Message: payload.Message}
}

// isDuplicateSKUMessage matches the remote duplicate-SKU error text. The
// catalog reports duplicates with a human message rather than a stable code.
func isDuplicateSKUMessage(msg string) bool {
	return strings.Contains(msg, "SKU") && strings.Contains(msg, "already")
}
