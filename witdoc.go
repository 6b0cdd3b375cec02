package witdoc

// Tree is the documentation extracted from a WIT package, keyed by world
// name. It is the in-memory form of the payload carried in the component's
// "package-docs" custom section. A Tree is never mutated after it is built
// or decoded; viewers read it once per declaration they encounter.
type Tree struct {
	Worlds map[string]*WorldDocs `json:"worlds"`
}

// WorldDocs holds the documentation attached to a single world and its
// function declarations. FuncExports is the current field; Functions is a
// legacy alias older payloads used in its place and is still accepted when
// reading. The two are never merged: a payload that carries FuncExports
// shadows Functions entirely, even for names FuncExports lacks.
type WorldDocs struct {
	Docs        *string              `json:"docs,omitempty"`
	FuncExports map[string]*FuncDocs `json:"func_exports,omitempty"`
	FuncImports map[string]*FuncDocs `json:"func_imports,omitempty"`
	Functions   map[string]*FuncDocs `json:"functions,omitempty"`
}

// FuncDocs holds the documentation attached to a single function. Docs is
// nil when the function carries no documentation, which is distinct from an
// empty string. Payloads may carry additional fields; they are ignored.
type FuncDocs struct {
	Docs *string `json:"docs,omitempty"`
}

// World resolves the documentation for a world by name.
//
// Exact name match wins. When there is no exact match and the tree contains
// exactly one world, that world is returned regardless of name: the textual
// rendering of a component may declare a world under a cosmetically
// different name than the resolved package did. With zero or several worlds
// and no exact match, resolution misses.
func (t *Tree) World(name string) (*WorldDocs, bool) {
	if t == nil || len(t.Worlds) == 0 {
		return nil, false
	}
	if w, ok := t.Worlds[name]; ok {
		return w, true
	}
	if len(t.Worlds) == 1 {
		for _, w := range t.Worlds {
			return w, true
		}
	}
	return nil, false
}

// Function resolves documentation for an exported function declared in this
// world. The collection is selected at field level: FuncExports when the
// payload carried it, the legacy Functions alias only when it did not. A
// name missing from a present FuncExports misses outright.
func (w *WorldDocs) Function(name string) (*FuncDocs, bool) {
	if w == nil {
		return nil, false
	}
	funcs := w.FuncExports
	if funcs == nil {
		funcs = w.Functions
	}
	f, ok := funcs[name]
	return f, ok
}

// Empty reports whether the tree carries no documentation at all.
func (t *Tree) Empty() bool {
	return t == nil || len(t.Worlds) == 0
}
