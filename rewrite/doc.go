// Package rewrite reproduces a component binary byte-for-byte while
// installing the documentation custom section.
//
// The rewriter never interprets section contents. It understands only the
// outer structure shared by core modules and components: an 8-byte preamble
// followed by a sequence of [id][size][bytes] sections. Everything it does
// not manage is an inert payload it copies verbatim.
package rewrite
