// Package render turns a documentation tree into terminal, markdown, JSON
// or HTML output.
//
// All renderers are direct dumps over an io.Writer with two independent
// display filters (worlds only, functions only). Output ordering is sorted
// by world and function name so identical trees always render identically.
package render
