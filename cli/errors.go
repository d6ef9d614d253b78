package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/safedep/bandview/tui"
)

// Process exit codes.
const (
	ExitGeneral = 1 // General/unknown error
	ExitConfig  = 2 // Invalid YAML or configuration values
	ExitInput   = 3 // Invalid flags or unreadable snapshot input
	ExitRender  = 4 // Terminal could not be driven
)

// ExitCoder is an interface for errors that carry a custom exit code.
type ExitCoder interface {
	ExitCode() int
}

// cliError is a typed error that carries an exit code.
type cliError struct {
	code    int
	message string
	err     error
}

// NewCLIError creates a new CLIError with the given code and message.
func NewCLIError(code int, message string) *cliError {
	return &cliError{
		code:    code,
		message: message,
	}
}

// WrapError creates a new CLIError wrapping an underlying error.
func WrapError(code int, message string, err error) *cliError {
	return &cliError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Error implements the error interface.
func (e *cliError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

// ExitCode returns the exit code for this error.
func (e *cliError) ExitCode() int {
	return e.code
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *cliError) Unwrap() error {
	return e.err
}

// ErrConfig creates a configuration error.
func ErrConfig(message string, err error) *cliError {
	return WrapError(ExitConfig, message, err)
}

// ErrInput creates an invalid input error.
func ErrInput(message string, err error) *cliError {
	if err == nil {
		return NewCLIError(ExitInput, message)
	}
	return WrapError(ExitInput, message, err)
}

// ErrRender creates a terminal rendering error.
func ErrRender(message string, err error) *cliError {
	return WrapError(ExitRender, message, err)
}

// ReportError renders err to w and returns the process exit code for it.
func ReportError(w io.Writer, err error) int {
	presenter := tui.NewPresenter(tui.FormatTable, tui.PresenterOptions{
		Writer:    w,
		UseColors: !globalFlags.NoColor && tui.IsWriterTerminal(w),
	})
	_ = presenter.RenderError(err)

	var exitErr ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return ExitGeneral
}
