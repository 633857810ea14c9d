package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode classifies user-facing failures of the scaffolding and config commands.
type ErrorCode string

const (
	ErrInvalidName     ErrorCode = "INVALID_NAME"
	ErrInvalidTemplate ErrorCode = "INVALID_TEMPLATE"
	ErrDirectoryExists ErrorCode = "DIRECTORY_EXISTS"
	ErrFileExists      ErrorCode = "FILE_EXISTS"
	ErrInvalidSegment  ErrorCode = "INVALID_SEGMENT"
	ErrInvalidLayer    ErrorCode = "INVALID_LAYER"
	ErrConfigNotFound  ErrorCode = "CONFIG_NOT_FOUND"
	ErrInvalidConfig   ErrorCode = "INVALID_CONFIG"
)

// CoachError is an expected failure with a code and the values that caused it.
type CoachError struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

func NewCoachError(code ErrorCode, message string, context map[string]any) *CoachError {
	return &CoachError{Code: code, Message: message, Context: context}
}

func (e *CoachError) Error() string {
	return e.Message
}

// Detail renders the error with its code and context, for verbose output.
func (e *CoachError) Detail() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CoachError [%s]: %s", e.Code, e.Message)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "\n  %s: %v", k, e.Context[k])
		}
	}
	return b.String()
}

// IsCoachError reports whether err wraps a *CoachError and returns it.
func IsCoachError(err error) (*CoachError, bool) {
	var ce *CoachError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
