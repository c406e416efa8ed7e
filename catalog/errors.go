package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a failure so the transport layer can pick a status code.
type Kind string

const (
	KindNotFound    Kind = "not_found"
	KindInvalidData Kind = "invalid_data"
	KindValidation  Kind = "validation"
	KindInternal    Kind = "internal"
)

const (
	CodeInvalidStatus  = "INVALID_CHARACTER_STATUS"
	CodeInvalidGender  = "INVALID_CHARACTER_GENDER"
	CodeInvalidSpecies = "INVALID_CHARACTER_SPECIES"
	CodeInvalidOrigin  = "INVALID_CHARACTER_ORIGIN"
	CodeInvalidData    = "INVALID_CHARACTER_DATA"
	CodeValidation     = "VALIDATION_ERROR"
	CodeInternal       = "INTERNAL_SERVER_ERROR"
	CodeNotFound       = "NOT_FOUND"
)

// Resource names carried by NotFound errors.
const (
	ResourceCharacter = "character"
	ResourceFavorite  = "favorite"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("catalog: record not found")

// Field-specific sentinels; match with errors.Is.
var (
	ErrStatusInvalid  = &Error{Kind: KindInvalidData, Code: CodeInvalidStatus}
	ErrGenderInvalid  = &Error{Kind: KindInvalidData, Code: CodeInvalidGender}
	ErrSpeciesInvalid = &Error{Kind: KindInvalidData, Code: CodeInvalidSpecies}
	ErrOriginInvalid  = &Error{Kind: KindInvalidData, Code: CodeInvalidOrigin}
	ErrInvalidData    = &Error{Kind: KindInvalidData, Code: CodeInvalidData}
)

// Violation is one failed form constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single error type produced by the catalog services.
type Error struct {
	Kind       Kind
	Code       string
	Message    string
	Resource   string
	Field      string
	Value      string
	Violations []Violation
	Cause      error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by kind and, when the target sets one, by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

func notFound(resource string, id uint64, cause error) *Error {
	return &Error{
		Kind:     KindNotFound,
		Code:     CodeNotFound,
		Resource: resource,
		Message:  fmt.Sprintf("%s with id %d was not found", resource, id),
		Cause:    cause,
	}
}

func invalidField(code, field, value, message string) *Error {
	return &Error{
		Kind:    KindInvalidData,
		Code:    code,
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// InvalidData reports a malformed request that is not tied to one allow-list.
func InvalidData(message string) *Error {
	return &Error{Kind: KindInvalidData, Code: CodeInvalidData, Message: message}
}

// Internal wraps an unexpected failure. The message is safe to show; the cause is not.
func Internal(cause error, message string) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: message, Cause: cause}
}

// NewValidationError aggregates form violations into one error. Fields are
// sorted so the message is stable.
func NewValidationError(violations []Violation) *Error {
	sorted := make([]Violation, len(violations))
	copy(sorted, violations)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Field < sorted[j].Field })

	parts := make([]string, 0, len(sorted))
	for _, v := range sorted {
		parts = append(parts, v.Field+" - "+v.Message)
	}
	return &Error{
		Kind:       KindValidation,
		Code:       CodeValidation,
		Message:    "validation failed: " + strings.Join(parts, "; "),
		Violations: sorted,
	}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// wrapStoreErr turns a repository failure into a catalog error.
func wrapStoreErr(err error, resource string, id uint64, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return notFound(resource, id, err)
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Internal(err, "failed to "+action)
}
