package ped

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrInvalidFluidState is returned for a fluid state other than gas or liquid.
	ErrInvalidFluidState = errors.New("invalid fluid state")

	// ErrInvalidFluidGroup is returned for a fluid group other than 1 or 2.
	ErrInvalidFluidGroup = errors.New("invalid fluid group")

	// ErrInvalidInput is returned when PS or DN is not a finite positive number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRule is returned when a registry holds no rule for a state/group pair.
	ErrNoRule = errors.New("no classification rule")
)

// ErrorCode identifies an input error class. Codes are strings so they read
// well in logs and serialize naturally.
type ErrorCode string

const (
	// CodeInvalidFluidState marks an unknown fluid state.
	CodeInvalidFluidState ErrorCode = "INVALID_FLUID_STATE"

	// CodeInvalidFluidGroup marks an unknown fluid group.
	CodeInvalidFluidGroup ErrorCode = "INVALID_FLUID_GROUP"

	// CodeInvalidInput marks a non-positive or non-finite PS or DN.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// InputError describes a rejected caller input.
type InputError struct {
	Code  ErrorCode
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s=%q", e.Err, e.Field, e.Value)
}

// Unwrap returns the sentinel error.
func (e *InputError) Unwrap() error {
	return e.Err
}

// CodeOf returns the ErrorCode carried by err, or "" when err is not an
// *InputError.
func CodeOf(err error) ErrorCode {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}
