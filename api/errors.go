package api

import (
	"errors"
	"fmt"
)

// Error codes returned inside the Torn API error envelope.
const (
	CodeUnknownError           = 0
	CodeKeyEmpty               = 1
	CodeIncorrectKey           = 2
	CodeWrongType              = 3
	CodeWrongFields            = 4
	CodeTooManyRequests        = 5
	CodeIncorrectID            = 6
	CodeIncorrectIDRelation    = 7
	CodeIPBlock                = 8
	CodeAPIDisabled            = 9
	CodeKeyOwnerInFederalJail  = 10
	CodeKeyChangeError         = 11
	CodeKeyReadError           = 12
	CodeKeyTemporarilyDisabled = 13
	CodeDailyReadLimit         = 14
	CodeTemporaryError         = 15
	CodeAccessLevelTooLow      = 16
	CodeBackendError           = 17
	CodeKeyPaused              = 18
)

// ErrMissingField is returned by Response.DecodeField when the requested
// key is absent, typically because the matching selection was not part of
// the request.
var ErrMissingField = errors.New("missing field")

// Error is a failure reported by the Torn API itself, as opposed to a
// transport failure.
type Error struct {
	Code   int
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api returned error '%s', code = '%d'", e.Reason, e.Code)
}

// Temporary reports whether the same request may succeed when repeated
// later, without any change on the caller's side.
func (e *Error) Temporary() bool {
	switch e.Code {
	case CodeTooManyRequests, CodeTemporaryError, CodeBackendError:
		return true
	}
	return false
}

// RateLimited reports whether the key exceeded its request budget.
func (e *Error) RateLimited() bool {
	return e.Code == CodeTooManyRequests
}
