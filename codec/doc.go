// Package codec implements the JSON object mapper: a decoder that walks
// parsed JSON trees and populates typed resource instances through the
// registry's descriptor tables, and the symmetric encoder that serializes
// an instance graph back to canonical JSON with sorted keys.
//
// JSON objects are represented by Document, an ordered mapping. Wire key
// order is observable to the decoder (properties are set in the order they
// appear in the payload) and encoder output is deterministic regardless of
// field declaration order.
//
// Decode results are a tagged union (Result) with five variants: null,
// bare string, typed instance, ordered list of instances, and a raw
// status/body fallback for non-JSON response bodies.
package codec
