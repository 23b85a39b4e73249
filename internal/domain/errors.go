package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrWindowNotFound  = errors.New("window not found")
)

type ErrorKind string

const (
	KindConfigMissing       ErrorKind = "ConfigMissing"
	KindConfigInvalid       ErrorKind = "ConfigInvalid"
	KindUnknownProfile      ErrorKind = "UnknownProfile"
	KindLaunchFailure       ErrorKind = "LaunchFailure"
	KindLocatorTimeout      ErrorKind = "LocatorTimeout"
	KindLocatorBadArguments ErrorKind = "LocatorBadArguments"
	KindExternalToolFailure ErrorKind = "ExternalToolFailure"
)

// Error is a classified failure that ends a run.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind, true
	}

	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}
