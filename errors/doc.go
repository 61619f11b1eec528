// Package errors defines the error types shared by the object mapper and
// the resource operations.
//
// Three error kinds exist. UnknownTypeError and UnknownPropertyError are
// raised by the decoder when the wire payload does not match the registered
// type tables. BillingError represents a structured error envelope returned
// by the remote API in place of a resource. All three abort a decode with
// no partial result.
//
// Transport-level failures (connection errors, timeouts) are owned by the
// httpclient package and are not part of this taxonomy.
package errors
