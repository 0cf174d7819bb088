package httperr

import (
	"errors"
	"strings"
)

// Kind tags a business error so callers can branch on the failure
// class without matching on message strings.
type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindConflict
	KindInternal
)

type BusinessError struct {
	Kind       Kind
	Code       string
	Message    string
	Violations []string
}

func (e BusinessError) Error() string {
	if len(e.Violations) > 0 {
		return e.Message + ": " + strings.Join(e.Violations, "; ")
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func NotFoundError(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ValidationError(code, message string, violations ...string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message, Violations: violations}
}

func ConflictError(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}

func IsKind(err error, kind Kind) bool {
	be, ok := AsBusiness(err)
	return ok && be.Kind == kind
}
