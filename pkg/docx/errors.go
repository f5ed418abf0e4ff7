package docx

import (
	"errors"
	"fmt"
	"strings"
)

// IssueKind classifies an unresolved cross-part reference
type IssueKind string

const (
	IssueNumbering    IssueKind = "numbering"
	IssueAbstractNum  IssueKind = "abstract-numbering"
	IssueStyle        IssueKind = "style"
	IssueRelationship IssueKind = "relationship"
	IssueComment      IssueKind = "comment"
	IssueContentType  IssueKind = "content-type"
)

// Issue is a single reference that has no entry in its owning part
type Issue struct {
	Kind     IssueKind
	Ref      string
	Location string
	Message  string
}

func (i Issue) String() string {
	if i.Location != "" {
		return fmt.Sprintf("%s %q at %s: %s", i.Kind, i.Ref, i.Location, i.Message)
	}
	return fmt.Sprintf("%s %q: %s", i.Kind, i.Ref, i.Message)
}

// IntegrityError lists every unresolved reference found before serialization
type IntegrityError struct {
	Issues []Issue
}

func (e *IntegrityError) Error() string {
	if len(e.Issues) == 0 {
		return "integrity error"
	}

	if len(e.Issues) == 1 {
		return fmt.Sprintf("integrity error: %s", e.Issues[0])
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d unresolved references:", len(e.Issues)))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s", issue))
	}
	return strings.Join(parts, "\n")
}

// MalformedInputError reports a caller-supplied value that cannot be represented in its
// schema field
type MalformedInputError struct {
	Field string
	Value string
	Cause error
}

func (e *MalformedInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed %s %q: %v", e.Field, e.Value, e.Cause)
	}
	return fmt.Sprintf("malformed %s %q", e.Field, e.Value)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Cause
}

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// ValidationIssue represents a single validation problem
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError represents multiple validation issues
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}

	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d validation issues:", len(e.Issues)))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

// ContextError adds context to an existing error
type ContextError struct {
	Operation string
	Context   map[string]interface{}
	Cause     error
}

func (e *ContextError) Error() string {
	var contextParts []string
	for k, v := range e.Context {
		contextParts = append(contextParts, fmt.Sprintf("%s=%v", k, v))
	}

	if len(contextParts) > 0 {
		return fmt.Sprintf("%s [%s]: %v", e.Operation, strings.Join(contextParts, ", "), e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Cause)
}

func (e *ContextError) Unwrap() error {
	return e.Cause
}

// WithContext wraps an error with additional context
func WithContext(err error, operation string, context map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &ContextError{
		Operation: operation,
		Context:   context,
		Cause:     err,
	}
}

// IsIntegrityError checks if an error is, or wraps, an integrity error
func IsIntegrityError(err error) bool {
	var target *IntegrityError
	return errors.As(err, &target)
}

// IsMalformedInputError checks if an error is, or wraps, a malformed input error
func IsMalformedInputError(err error) bool {
	var target *MalformedInputError
	return errors.As(err, &target)
}

// IsDocumentError checks if an error is, or wraps, a document error
func IsDocumentError(err error) bool {
	var target *DocumentError
	return errors.As(err, &target)
}

// IsValidationError checks if an error is, or wraps, a validation error
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
