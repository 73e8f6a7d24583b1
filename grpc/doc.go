// Package clgrpc carries the storage boundary over gRPC, using
// cramberry for deterministic binary serialization of the request
// envelopes.
//
// No protobuf code generation is required. The envelopes are plain
// structs with cramberry tags; the payloads inside them are the
// bytesrepr encodings produced by the contract types and are never
// inspected in transit.
package clgrpc
