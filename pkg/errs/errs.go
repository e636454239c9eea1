package errs

import (
	"fmt"
)

// Err represents structure of a custom error
type Err struct {
	Code    string
	Message string
}

func (e Err) Error() string {
	return fmt.Sprintf("%s : %s ", e.Code, e.Message)
}

// Error represents a json-encoded error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}

// StatusFailed is returned when the run reached a deliberate failed end state,
// as opposed to an unexpected error.
type StatusFailed struct {
	Remark string
}

func (e *StatusFailed) Error() string {
	return e.Remark
}

// ErrInvalidConfig returns an error listing every invalid configuration field.
func ErrInvalidConfig(fields []string) error {
	return &Error{Message: fmt.Sprintf("invalid configuration: %v", fields)}
}

// ErrDirCrt function returns error with code "ERR::DIR::CRT"
func ErrDirCrt(err string) Err {
	return Err{
		Code:    "ERR::DIR::CRT",
		Message: fmt.Sprintf("Unable to create directory :  \n%s", err)}
}

// ErrToolExec function returns error with code "ERR::TOOL::EXEC"
func ErrToolExec(tool string, err error) Err {
	return Err{
		Code:    "ERR::TOOL::EXEC",
		Message: fmt.Sprintf("%s failed: %v", tool, err)}
}

var (
	// ErrUnexpectedToolOutput is returned when lcov output does not have the expected banner or footer.
	ErrUnexpectedToolOutput = New("unexpected lcov output format")
	// ErrMissingEventPayload is returned when the event payload file cannot be read.
	ErrMissingEventPayload = New("event payload not found")
	// ErrUnsupportedEvent is returned when an operation needs a pull request or push event.
	ErrUnsupportedEvent = New("unsupported event")
	// ErrInvalidRepository is returned when the repository slug is not owner/name.
	ErrInvalidRepository = New("invalid repository slug")
	// ErrNotFound return when azure blob is not found.
	ErrNotFound = New("blob not found")
	// ErrAzureCredentials is returned when the azure credentials are invalid.
	ErrAzureCredentials = New("azure client requires credentials")
	// ErrUnsupportedArtifactStore is returned for an unknown artifact store kind.
	ErrUnsupportedArtifactStore = New("unsupported artifact store")
	// ErrInvalidLoggerInstance is returned when logger instance is not supported.
	ErrInvalidLoggerInstance = New("Invalid logger instance")
)
