// Package extract builds a documentation tree from resolved WIT package
// metadata.
//
// Resolution itself is external: a WIT source directory goes through
// wasm-tools and comes back as a wit.Resolve. This package only walks the
// resolved worlds, pulling world-level and function-level doc comments into
// the tree that the section codec serializes.
package extract
