package chromologger

import (
	"fmt"

	"github.com/pkg/errors"
)

// WithOpenFailure wraps `parent` with an `OpenFailure`
func WithOpenFailure(path string, parent error) error {
	return &OpenFailure{parent, path}
}

// WithWriteFailure wraps `parent` with a `WriteFailure`
func WithWriteFailure(path string, parent error) error {
	return &WriteFailure{parent, path}
}

// WithExtractionFailure wraps `parent` with an `ExtractionFailure`
func WithExtractionFailure(parent error) error {
	return &ExtractionFailure{parent}
}

// WithDiagnosticFailure wraps `parent` with a `DiagnosticFailure`
func WithDiagnosticFailure(path string, parent error) error {
	return &DiagnosticFailure{parent, path}
}

func IsOpenFailure(err error) bool {
	var target *OpenFailure
	return err != nil && errors.As(err, &target)
}

func IsWriteFailure(err error) bool {
	var target *WriteFailure
	return err != nil && errors.As(err, &target)
}

func IsExtractionFailure(err error) bool {
	var target *ExtractionFailure
	return err != nil && errors.As(err, &target)
}

func IsDiagnosticFailure(err error) bool {
	var target *DiagnosticFailure
	return err != nil && errors.As(err, &target)
}

// OpenFailure indicates the log file could not be opened or created, e.g.
// the path is invalid or its directory is not writable.
//
// A Logger whose open failed stays usable, but every record it is given is
// diverted to the diagnostic log.
type OpenFailure struct {
	error

	// Path is the log file that could not be opened
	Path string
}

func (e *OpenFailure) Error() string {
	return maybeWrap(e.error, fmt.Sprintf("open failure on %s", e.Path)).Error()
}

func (e *OpenFailure) Cause() error  { return e.error }
func (e *OpenFailure) Unwrap() error { return e.error }

// WriteFailure indicates a record could not be appended, either because the
// log file is not open (failed or closed) or because of an I/O error.
type WriteFailure struct {
	error

	// Path is the log file the record was meant for
	Path string
}

func (e *WriteFailure) Error() string {
	return maybeWrap(e.error, fmt.Sprintf("write failure on %s", e.Path)).Error()
}

func (e *WriteFailure) Cause() error  { return e.error }
func (e *WriteFailure) Unwrap() error { return e.error }

// ExtractionFailure indicates the fault location could not be extracted from
// an error, typically because it carries no stack trace.
type ExtractionFailure struct {
	error
}

func (e *ExtractionFailure) Error() string {
	return maybeWrap(e.error, "extraction failure").Error()
}

func (e *ExtractionFailure) Cause() error  { return e.error }
func (e *ExtractionFailure) Unwrap() error { return e.error }

// DiagnosticFailure indicates that even the diagnostic log could not be
// written. It is only ever shown on the console.
type DiagnosticFailure struct {
	error

	// Path is the diagnostic log path
	Path string
}

func (e *DiagnosticFailure) Error() string {
	return maybeWrap(e.error, fmt.Sprintf("diagnostic failure on %s", e.Path)).Error()
}

func (e *DiagnosticFailure) Cause() error  { return e.error }
func (e *DiagnosticFailure) Unwrap() error { return e.error }

func maybeWrap(err error, message string) error {
	if err != nil {
		return errors.WithMessage(err, message)
	}
	return errors.New(message)
}
