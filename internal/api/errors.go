package api

import (
	"errors"
	"fmt"
	"strings"
)

// RequestError is the single failure shape for every server call.
// Message is human readable and safe to show to the user.
type RequestError struct {
	Method  string
	Path    string
	Status  int // 0 when the request never got a response
	Message string
}

// Error returns the user-facing message
func (e *RequestError) Error() string {
	return e.Message
}

// genericMessage is used when the error body carries no "error" field
func genericMessage(status int) string {
	return fmt.Sprintf("Request failed (%d)", status)
}

// IsNameTaken reports whether a join failed because the name is already
// claimed on the board. Such failures are expected on reconnect.
func IsNameTaken(err error) bool {
	if err == nil {
		return false
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return strings.Contains(reqErr.Message, "already taken")
	}
	return strings.Contains(err.Error(), "already taken")
}
