// Package wasmtools invokes the external wasm-tools executable.
//
// It is the tool's single subprocess front door: the viewer obtains the
// textual WIT rendering of a component through it, and the extractor obtains
// the resolved JSON form of a WIT source directory. Invocation is
// synchronous with no retry; a missing binary, non-zero exit or non-UTF-8
// output is a hard failure carrying the tool's stderr.
package wasmtools
