package errors

import (
	"fmt"
)

// ParseError represents a failure to decode a config file or message payload,
// with optional line metadata when the decoder reports it.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RuleError indicates issues within matcher rule registration or evaluation.
type RuleError struct {
	Rule    string
	Message string
	Err     error
}

// NewRuleError constructs a RuleError for the given rule name.
func NewRuleError(rule string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RuleError{Rule: rule, Message: message, Err: err}
}

func (e *RuleError) Error() string {
	if e == nil {
		return ""
	}
	if e.Rule != "" {
		return fmt.Sprintf("rule error [%s]: %s", e.Rule, e.Message)
	}
	return fmt.Sprintf("rule error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SanitizeError records a sanitizer failure that forced the escape fallback.
type SanitizeError struct {
	Message string
	Err     error
}

// NewSanitizeError constructs a SanitizeError.
func NewSanitizeError(err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &SanitizeError{Message: message, Err: err}
}

func (e *SanitizeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("sanitize error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SanitizeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
