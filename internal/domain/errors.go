package domain

import (
	"errors"
	"fmt"
)

const (
	MinCapacity = 1
	MaxCapacity = 55
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// UnauthorizedError is returned for bad credentials or a missing/expired token.
type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

// InvalidCapacityError reports a seat capacity outside [MinCapacity, MaxCapacity]
// or a value that is not an integer. Raw holds the original input when it came
// in as text.
type InvalidCapacityError struct {
	Value int
	Raw   string
}

func (e InvalidCapacityError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("invalid capacity %q: must be an integer in [%d,%d]", e.Raw, MinCapacity, MaxCapacity)
	}
	return fmt.Sprintf("invalid capacity %d: must be in [%d,%d]", e.Value, MinCapacity, MaxCapacity)
}

// DuplicateSeatAssignmentError reports two passengers on the same seat.
type DuplicateSeatAssignmentError struct {
	Seat int
}

func (e DuplicateSeatAssignmentError) Error() string {
	return fmt.Sprintf("seat %d assigned more than once", e.Seat)
}

// AssetFetchError wraps a failed logo retrieval. Receipt rendering treats it
// as non-fatal.
type AssetFetchError struct {
	Source string
	Err    error
}

func (e AssetFetchError) Error() string {
	return fmt.Sprintf("fetch asset %s: %v", e.Source, e.Err)
}

func (e AssetFetchError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

// IsValidation also matches InvalidCapacityError.
func IsValidation(err error) bool {
	var target ValidationError
	if errors.As(err, &target) {
		return true
	}
	return IsInvalidCapacity(err)
}

func IsConflict(err error) bool {
	var target ConflictError
	if errors.As(err, &target) {
		return true
	}
	return IsDuplicateSeat(err)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsInvalidCapacity(err error) bool {
	var target InvalidCapacityError
	return errors.As(err, &target)
}

func IsDuplicateSeat(err error) bool {
	var target DuplicateSeatAssignmentError
	return errors.As(err, &target)
}

func IsAssetFetch(err error) bool {
	var target AssetFetchError
	return errors.As(err, &target)
}
