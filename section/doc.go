// Package section encodes and decodes the "package-docs" custom section
// payload and locates the section inside a component binary.
//
// The payload layout is one version byte followed by the UTF-8 JSON
// serialization of the documentation tree. The version byte is reserved so a
// future payload shape can be introduced without breaking older decoders
// structurally; current decoders skip it without validation.
package section
