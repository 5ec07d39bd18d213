package service

import "fmt"

// ErrorKind discriminates domain failures. Handlers switch on the kind
// exhaustively to pick the HTTP status and stable machine-readable code;
// message text is for humans only.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error is the single error type crossing the service boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func ValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func UnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func ForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// InternalError wraps an unexpected failure (store unavailable, crypto
// failure). The cause never crosses the HTTP boundary.
func InternalError(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}
