package rin

import (
	"errors"
	"fmt"
	"io"
)

type streamError struct {
	message  string
	encoding bool
	cause    error
}

func (err *streamError) Error() string {
	if err.hasCause() {
		return fmt.Sprintf("%s (cause: %s)", err.getMessage(), err.cause.Error())
	} else {
		return err.getMessage()
	}
}

func (err *streamError) getMessage() string {
	return err.message
}

func (err *streamError) getCause() error {
	return err.cause
}

func (err *streamError) hasCause() bool {
	return err.cause != nil
}

func (err *streamError) Unwrap() error {
	return err.cause
}

func (err *streamError) isEOF() bool {
	return errors.Is(err.cause, io.EOF)
}

// recoverable tells whether a later refill could succeed again. Running out
// of data is recoverable (the source may be a live terminal or socket),
// malformed utf8 is not.
func (err *streamError) recoverable() bool {
	return !err.encoding
}

func newReadingError(err error) *streamError {
	return &streamError{
		message:  "error reading from source",
		encoding: false,
		cause:    err,
	}
}

func newEncodingError() *streamError {
	return &streamError{
		message:  "malformed utf8 sequence in source",
		encoding: true,
	}
}
