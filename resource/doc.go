// Package resource provides the base type embedded by all billing
// resources. It composes the encoder (request bodies), the decoder
// (response bodies) and the HTTP transport into the four CRUD verbs, plus
// a helper that follows the Location header of a create response and
// re-fetches the created resource.
//
// The transport is injected at construction and shared only within one
// resource instance; the layer holds no other state between calls.
package resource
