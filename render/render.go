package render

import (
	"sort"

	"github.com/wippyai/witdoc"
)

// Options are display-time filters. They suppress sections of the output;
// the tree itself is never mutated.
type Options struct {
	// FunctionsOnly suppresses world-level headings and documentation.
	FunctionsOnly bool
	// WorldsOnly suppresses function-level sections.
	WorldsOnly bool
}

// placeholder strings used when documentation is absent.
const (
	noDocs         = "(no documentation)"
	noDocsMarkdown = "*(no documentation)*"
)

// sortedWorlds returns world names in sorted order. Go maps do not preserve
// insertion order, and identical inputs must produce byte-identical output.
func sortedWorlds(tree *witdoc.Tree) []string {
	names := make([]string, 0, len(tree.Worlds))
	for name := range tree.Worlds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedFuncs(funcs map[string]*witdoc.FuncDocs) []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
