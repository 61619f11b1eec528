package errors

import (
	stderrors "errors"
	"fmt"
)

// UnknownTypeError indicates that a type name could not be resolved to a
// registered, instantiable resource type.
type UnknownTypeError struct {
	// Type is the type name that failed to resolve.
	Type string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("killbill: unknown resource type %q", e.Type)
}

// UnknownPropertyError indicates that a decoded JSON key has no settable
// property on the target type.
type UnknownPropertyError struct {
	// Type is the name of the target type.
	Type string
	// Property is the JSON key that has no corresponding property.
	Property string
}

// Error implements the error interface.
func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("killbill: type %q has no property %q", e.Type, e.Property)
}

// BillingError is a structured error returned by the remote API in place of
// a resource body. It is detected on the wire by the presence of the three
// keys className, code and message.
type BillingError struct {
	// Class is the server-side exception class name.
	Class string
	// Code is the numeric error code reported by the server.
	Code int
	// Message is the human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *BillingError) Error() string {
	if e.Class != "" {
		return fmt.Sprintf("killbill: remote error %d (%s): %s", e.Code, e.Class, e.Message)
	}
	return fmt.Sprintf("killbill: remote error %d: %s", e.Code, e.Message)
}

// IsUnknownType checks if an error is an UnknownTypeError.
func IsUnknownType(err error) bool {
	var e *UnknownTypeError
	return stderrors.As(err, &e)
}

// IsUnknownProperty checks if an error is an UnknownPropertyError.
func IsUnknownProperty(err error) bool {
	var e *UnknownPropertyError
	return stderrors.As(err, &e)
}

// IsBilling checks if an error is a BillingError.
func IsBilling(err error) bool {
	var e *BillingError
	return stderrors.As(err, &e)
}

// AsBilling extracts a BillingError from an error chain.
func AsBilling(err error) (*BillingError, bool) {
	var e *BillingError
	ok := stderrors.As(err, &e)
	return e, ok
}
