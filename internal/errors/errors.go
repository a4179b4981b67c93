package errors

import (
	"fmt"
)

// InputError represents an error caused by missing or unusable caller input
type InputError struct {
	Field   string
	Message string
}

// Error returns the error message
func (e *InputError) Error() string {
	return fmt.Sprintf("input error for %s: %s", e.Field, e.Message)
}

// EncodingError represents an error when a payload cannot be QR-encoded
type EncodingError struct {
	Payload string
	Message string
	Err     error
}

// Error returns the error message
func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("QR encoding failed for %q: %v", e.Payload, e.Err)
	}
	return fmt.Sprintf("QR encoding failed for %q: %s", e.Payload, e.Message)
}

// Unwrap returns the underlying encoder error
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// FontLoadError represents an error when a font file cannot be loaded.
// It is never surfaced to callers; the font manager degrades to the
// built-in face and logs the problem instead.
type FontLoadError struct {
	Path string
	Err  error
}

// Error returns the error message
func (e *FontLoadError) Error() string {
	return fmt.Sprintf("failed to load font %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying load error
func (e *FontLoadError) Unwrap() error {
	return e.Err
}

// FilesystemError represents an error when the output location cannot be used
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the error message
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error during %s on %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error
func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error related to configuration
type ConfigError struct {
	Section string
	Message string
}

// Error returns the error message
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Section, e.Message)
}
