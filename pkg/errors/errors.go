package errors

import (
	stderrors "errors"
	"fmt"
)

// FriendlyError is implemented by errors that have a polished message meant
// to be printed directly to the user, without any "error:" style prefixes.
type FriendlyError interface {
	FriendlyMessage() string
}

// New returns an error with the given message. The message is formatted
// according to the rules of fmt.Sprintf.
func New(format string, args ...interface{}) error {
	return stderrors.New(fmt.Sprintf(format, args...))
}

type contextError struct {
	context string
	err     error
}

func (err contextError) Error() string {
	return fmt.Sprintf("%s: %s", err.context, err.err)
}

// WithContext annotates err with information on the operation that failed.
// The resulting message reads outermost context first, like a call stack.
func WithContext(err error, context string) error {
	return contextError{context, err}
}

type friendlyError struct {
	message string
}

func (err friendlyError) Error() string {
	return err.message
}

func (err friendlyError) FriendlyMessage() string {
	return err.message
}

// NewFriendlyError creates an error whose message is shown to the user
// verbatim. Use it for errors the user is expected to resolve themselves.
func NewFriendlyError(format string, args ...interface{}) error {
	return friendlyError{fmt.Sprintf(format, args...)}
}
