package uigen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a compilation error.
type ErrorKind uint8

const (
	KindIO ErrorKind = iota
	KindLex
	KindUnexpectedToken
	KindUnexpectedEOF
	KindUnknownComponent
	KindDuplicateElementID
)

// Sentinels for matching an error's kind with errors.Is.
var (
	ErrIO                 = errors.New("i/o error")
	ErrLex                = errors.New("lex error")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrUnknownComponent   = errors.New("unknown component")
	ErrDuplicateElementID = errors.New("duplicate element id")
)

var kindSentinels = [...]error{
	KindIO:                 ErrIO,
	KindLex:                ErrLex,
	KindUnexpectedToken:    ErrUnexpectedToken,
	KindUnexpectedEOF:      ErrUnexpectedEOF,
	KindUnknownComponent:   ErrUnknownComponent,
	KindDuplicateElementID: ErrDuplicateElementID,
}

// String returns the sentinel message for the kind.
func (k ErrorKind) String() string {
	if int(k) < len(kindSentinels) {
		return kindSentinels[k].Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error represents a compilation error with source location and optional hint.
type Error struct {
	Kind    ErrorKind
	Pos     Position
	Message string
	Hint    string // optional suggestion for fixing the error
	Err     error  // underlying cause, set for KindIO
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Pos.String())
	sb.WriteString(": error: ")
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap exposes the kind sentinel and any underlying cause.
func (e *Error) Unwrap() []error {
	var errs []error
	if int(e.Kind) < len(kindSentinels) {
		errs = append(errs, kindSentinels[e.Kind])
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewError creates a new Error with the given kind, position, and message.
func NewError(kind ErrorKind, pos Position, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

// NewErrorf creates a new Error with a formatted message.
func NewErrorf(kind ErrorKind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// ErrorList collects multiple errors during compilation.
type ErrorList struct {
	errors []*Error
}

// NewErrorList creates an empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.errors = append(el.errors, err)
}

// AddErrorf creates and adds an error with a formatted message.
func (el *ErrorList) AddErrorf(kind ErrorKind, pos Position, format string, args ...any) {
	el.errors = append(el.errors, NewErrorf(kind, pos, format, args...))
}

// Len returns the number of errors.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// HasErrors returns true if there are any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.errors) > 0
}

// Errors returns a copy of the error slice.
func (el *ErrorList) Errors() []*Error {
	result := make([]*Error, len(el.errors))
	copy(result, el.errors)
	return result
}

// Error implements the error interface, returning all errors joined by newlines.
func (el *ErrorList) Error() string {
	if len(el.errors) == 0 {
		return ""
	}
	if len(el.errors) == 1 {
		return el.errors[0].Error()
	}

	var sb strings.Builder
	for i, err := range el.errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap lets errors.Is and errors.As see every collected error.
func (el *ErrorList) Unwrap() []error {
	errs := make([]error, len(el.errors))
	for i, err := range el.errors {
		errs[i] = err
	}
	return errs
}

// Err returns nil if there are no errors, otherwise returns the ErrorList as an error.
func (el *ErrorList) Err() error {
	if len(el.errors) == 0 {
		return nil
	}
	return el
}
