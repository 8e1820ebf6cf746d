package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every lookup failure
	ErrNotFound = errors.New("celestial body not found")
	// ErrDifferentSystem is matched when a path would cross two systems
	ErrDifferentSystem = errors.New("celestial bodies do not belong to the same system")
	// ErrZeroMass is returned when the center of mass has no defined value
	ErrZeroMass = errors.New("total system mass is zero")
	// ErrStarRemoval is returned when asked to remove the root of a system
	ErrStarRemoval = errors.New("the star of a system cannot be removed")
)

// NotFoundError reports an identifier that does not resolve to a live body
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("celestial body %s not found", e.Identifier)
}

// Is reports ErrNotFound as equivalent
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DifferentSystemError reports two bodies without a common ancestor
type DifferentSystemError struct {
	From Body
	To   Body
}

func (e *DifferentSystemError) Error() string {
	return fmt.Sprintf("%s %s and %s %s do not belong to the same system",
		e.From.Kind(), e.From.ID(), e.To.Kind(), e.To.ID())
}

// Is reports ErrDifferentSystem as equivalent
func (e *DifferentSystemError) Is(target error) bool {
	return target == ErrDifferentSystem
}
