// Package registry maintains the table of known resource types.
//
// The wire format is schema-less JSON while the in-memory model is strongly
// typed, so the decoder needs a way to turn a type name into a blank typed
// instance and to find, per JSON key, the property to populate and the type
// to decode nested objects into. The registry answers both.
//
// A Descriptor is built once at registration time by reflecting over the
// prototype's struct fields: json tags name the properties, unexported and
// json:"-" fields are excluded, and anonymous embedded structs are
// flattened. Nested-type hints come from an optional TypeHints method on
// the prototype. After registration all lookups are table-driven; no
// per-call reflection over names happens.
package registry
