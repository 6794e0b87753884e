// Package apperror defines the recoverable error conditions services surface
// to the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
)

type kind int

const (
	kindNotFound kind = iota + 1
	kindDuplicateTitle
	kindUnsupportedFormat
	kindEmptyExtraction
	kindExtractionFailure
)

// Sentinels for errors.Is checks. Constructed errors of the same kind match.
var (
	ErrNotFound          = &Error{kind: kindNotFound, message: "resource not found"}
	ErrDuplicateTitle    = &Error{kind: kindDuplicateTitle, message: "regulation title already exists"}
	ErrUnsupportedFormat = &Error{kind: kindUnsupportedFormat, message: "unsupported file format"}
	ErrEmptyExtraction   = &Error{kind: kindEmptyExtraction, message: "no clauses extracted from document"}
	ErrExtractionFailure = &Error{kind: kindExtractionFailure, message: "document text extraction failed"}
)

type Error struct {
	kind    kind
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any Error of the same kind, so wrapped constructor results
// compare equal to the package sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.kind == e.kind
}

func NotFound(format string, args ...interface{}) error {
	return &Error{kind: kindNotFound, message: fmt.Sprintf(format, args...)}
}

func DuplicateTitle(title string) error {
	return &Error{kind: kindDuplicateTitle, message: fmt.Sprintf("regulation %q already exists", title)}
}

func UnsupportedFormat(ext string, allowed []string) error {
	return &Error{kind: kindUnsupportedFormat, message: fmt.Sprintf("unsupported file format %q, allowed: %v", ext, allowed)}
}

func EmptyExtraction(filename string) error {
	return &Error{kind: kindEmptyExtraction, message: fmt.Sprintf("no clauses could be extracted from %q", filename)}
}

func ExtractionFailure(filename string, cause error) error {
	return &Error{kind: kindExtractionFailure, message: fmt.Sprintf("failed to extract text from %q", filename), cause: cause}
}
