// Package inject weaves extracted documentation back into a textual WIT
// rendering produced by an external tool.
//
// The rendering is never re-parsed or validated. A deliberately permissive
// two-state line scanner recognizes world headers and export/import function
// lines, inserts /// comments immediately before them with matching
// indentation, and copies everything else through untouched. That
// permissiveness is part of the contract: lines the scanner cannot interpret
// simply receive no documentation.
package inject
