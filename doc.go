// Copyright 2026 The go-packed Authors

// Package packed is a composable binary encoding/decoding toolkit.
//
// A Coder pairs a streaming encoder and decoder for a single value type.
// Primitive coders (integers, floats, bytes, strings) and combinators
// (struct, array, tag, pointer, ...) compose declaratively into a single
// Coder describing an entire wire format; Encode and Decode then perform
// round-trip conversion between Go values and byte slices.
//
// The engine is synchronous and operates on a fully materialized input
// buffer — there is no support for streaming over partial input, schema
// evolution, or random access into encoded data.
package packed
