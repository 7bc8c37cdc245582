package fastscan

import (
	"fmt"
)

// ErrorKind classifies scanner failures.
type ErrorKind string

const (
	// ErrSourceNotFound is raised at construction time when the named
	// input file does not exist.
	ErrSourceNotFound ErrorKind = "SOURCE_NOT_FOUND"
	// ErrFormat is raised when a typed read meets a token that does not
	// match the expected numeric grammar.
	ErrFormat ErrorKind = "FORMAT"
	// ErrDecoding is raised on a malformed multi byte character sequence.
	ErrDecoding ErrorKind = "DECODING"
	// ErrReading wraps an underlying stream failure when the scanner is
	// configured to propagate them.
	ErrReading ErrorKind = "READING"
)

// ScanError is the error type returned by every scanner operation.
type ScanError struct {
	kind    ErrorKind
	message string
	cause   error
}

func (err ScanError) Error() string {
	if err.hasCause() {
		return fmt.Sprintf("%s (cause: %s)", err.message, err.cause.Error())
	} else {
		return err.message
	}
}

func (err ScanError) Kind() ErrorKind {
	return err.kind
}

func (err ScanError) Unwrap() error {
	return err.cause
}

func (err ScanError) hasCause() bool {
	return err.cause != nil
}

func newFormatError(message string, a ...any) *ScanError {
	return &ScanError{
		kind:    ErrFormat,
		message: fmt.Sprintf(message, a...),
	}
}

func newDecodingError(message string, a ...any) *ScanError {
	return &ScanError{
		kind:    ErrDecoding,
		message: fmt.Sprintf(message, a...),
	}
}

func newReadingError(err error) *ScanError {
	return &ScanError{
		kind:    ErrReading,
		message: "error reading from source",
		cause:   err,
	}
}

func newSourceNotFoundError(path string, err error) *ScanError {
	return &ScanError{
		kind:    ErrSourceNotFound,
		message: fmt.Sprintf("source \"%v\" not found", path),
		cause:   err,
	}
}
