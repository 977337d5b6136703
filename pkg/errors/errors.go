// Package errors provides error handling for ontograph.
//
// It re-exports github.com/cockroachdb/errors for stack traces, wrapping
// and hints, and defines the four error kinds raised by the ontology
// layer:
//
//   - ProfileError: a language profile does not support a named term
//   - ConversionError: a node cannot be viewed as the requested facet
//   - ConsistencyError: a strict-mode structural validation failed
//   - ModelError: an ontology model could not be constructed
//
// None of them is retried; they propagate to the immediate caller.
package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinels for classification. Each typed error below reports itself as
// its sentinel through an Is method, so errors.Is(err, ErrProfile) holds
// for any wrapped ProfileError.
var (
	ErrProfile     = New("profile violation")
	ErrConversion  = New("facet conversion failed")
	ErrConsistency = New("consistency check failed")
	ErrModel       = New("ontology model error")
)

// ProfileError reports that the active language profile has no term for a
// named concept that an operation needs.
type ProfileError struct {
	Language string
	Term     string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("term %s is not supported by profile %s", e.Term, e.Language)
}

// Is reports whether target is the profile sentinel.
func (e *ProfileError) Is(target error) bool { return target == ErrProfile }

// NewProfileError creates a ProfileError with a hint naming the language.
func NewProfileError(language, term string) error {
	return WithHintf(WithStack(&ProfileError{Language: language, Term: term}),
		"choose a language profile that defines %s", term)
}

// ConversionError reports that no facet implementation accepted a node.
type ConversionError struct {
	Node  string
	Facet string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert node %s to %s", e.Node, e.Facet)
}

// Is reports whether target is the conversion sentinel.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// NewConversionError creates a ConversionError.
func NewConversionError(node, facet string) error {
	return WithStack(&ConversionError{Node: node, Facet: facet})
}

// ConsistencyError reports a failed strict-mode structural validation.
type ConsistencyError struct {
	Node   string
	Reason string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent structure at %s: %s", e.Node, e.Reason)
}

// Is reports whether target is the consistency sentinel.
func (e *ConsistencyError) Is(target error) bool { return target == ErrConsistency }

// NewConsistencyError creates a ConsistencyError.
func NewConsistencyError(node, reason string) error {
	return WithStack(&ConsistencyError{Node: node, Reason: reason})
}

// ModelError reports a construction-time failure of an ontology model.
type ModelError struct {
	Reason string
}

func (e *ModelError) Error() string {
	return "ontology model: " + e.Reason
}

// Is reports whether target is the model sentinel.
func (e *ModelError) Is(target error) bool { return target == ErrModel }

// NewModelError creates a ModelError with a formatted reason.
func NewModelError(format string, args ...interface{}) error {
	return WithStack(&ModelError{Reason: fmt.Sprintf(format, args...)})
}

// IsProfileError reports whether err is or wraps a ProfileError.
func IsProfileError(err error) bool {
	var target *ProfileError
	return err != nil && As(err, &target)
}

// IsConversionError reports whether err is or wraps a ConversionError.
func IsConversionError(err error) bool {
	var target *ConversionError
	return err != nil && As(err, &target)
}

// IsConsistencyError reports whether err is or wraps a ConsistencyError.
func IsConsistencyError(err error) bool {
	var target *ConsistencyError
	return err != nil && As(err, &target)
}

// IsModelError reports whether err is or wraps a ModelError.
func IsModelError(err error) bool {
	var target *ModelError
	return err != nil && As(err, &target)
}
