package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOrder is returned when an order references no items at all.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrInvalidInput is returned for malformed request shapes
	// (quantity below 1, unknown patch field, wrong type).
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError reports a missing catalog or order entity.
// Kind is the entity kind ("pizza", "drink", "dessert", "order"),
// ID the category-scoped identifier that failed to resolve.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Kind, e.ID)
}

func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// UnavailableError reports an entity that exists but is flagged
// unavailable for ordering.
type UnavailableError struct {
	Kind string
	Name string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s %q is not available", e.Kind, e.Name)
}

func Unavailable(kind, name string) error {
	return &UnavailableError{Kind: kind, Name: name}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsUnavailable reports whether err is (or wraps) an UnavailableError.
func IsUnavailable(err error) bool {
	var ua *UnavailableError
	return errors.As(err, &ua)
}
