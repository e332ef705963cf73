package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath reports an empty attribute path or an empty segment.
	ErrInvalidPath = errors.New("invalid attribute path")
	// ErrUnsupportedMethod reports a verb outside GET/POST/PUT/PATCH/DELETE.
	ErrUnsupportedMethod = errors.New("unsupported http method")
	// ErrAmbiguousResource reports a record whose declared resource type
	// differs from its own model; callers must pass an explicit target.
	ErrAmbiguousResource = errors.New("ambiguous resource")
	// ErrMissingOptionsForSelect reports a select field without options.
	ErrMissingOptionsForSelect = errors.New("select field requires options")
	// ErrUnexpectedOptions reports options attached to a non-select field.
	ErrUnexpectedOptions = errors.New("options are only valid on select fields")
	// ErrInvalidRecord reports a persisted record that carries no identifier.
	ErrInvalidRecord = errors.New("persisted record has no identifier")
	// ErrAttributeNotFound is a soft condition: renderers treat a missing
	// attribute as an absent value.
	ErrAttributeNotFound = errors.New("attribute not found")
)

// PathError describes why an attribute path was rejected.
type PathError struct {
	Path   AttributePath
	Index  int
	Reason string
}

func (e *PathError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidPath, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s at index %d", ErrInvalidPath, e.Path.String(), e.Reason, e.Index)
}

func (e *PathError) Unwrap() error {
	return ErrInvalidPath
}

// MethodError carries the verb that could not be planned.
type MethodError struct {
	Method string
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnsupportedMethod, e.Method)
}

func (e *MethodError) Unwrap() error {
	return ErrUnsupportedMethod
}

// FieldError ties a failure to the field that produced it.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
