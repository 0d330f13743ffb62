package tabx

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound indicates the input file does not exist.
var ErrSourceNotFound = errors.New("source not found")

// ErrNoDestination indicates a save was attempted with no destination
// configured or given.
var ErrNoDestination = errors.New("no destination for save")

// SourceFormatError indicates the input exists but is not a valid
// spreadsheet container.
type SourceFormatError struct {
	Name string
	Err  error
}

func (e *SourceFormatError) Error() string {
	return fmt.Sprintf("invalid source %q: %v", e.Name, e.Err)
}

func (e *SourceFormatError) Unwrap() error {
	return e.Err
}

// TableNotFoundError indicates no header row qualified before the search
// budget ran out, or the worksheet held no data at all.
type TableNotFoundError struct {
	Worksheet string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("could not find data table in worksheet %q", e.Worksheet)
}

// NotFoundError indicates a requested worksheet title does not exist.
type NotFoundError struct {
	Worksheet string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q does not exist", e.Worksheet)
}

// ConfigError indicates caller-supplied configuration is self-contradictory.
// It is raised eagerly, before any data is read or written.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}
