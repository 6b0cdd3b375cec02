package inject

import (
	"strings"

	"github.com/wippyai/witdoc"
)

// commentPrefix is the WIT doc-comment marker inserted before declarations.
const commentPrefix = "/// "

// scanState tracks where the scanner is in the rendering.
type scanState int

const (
	stateTopLevel scanState = iota
	stateWorldBody
)

// Annotate weaves documentation comments from tree into a textual WIT
// rendering. Comments are inserted immediately before each recognized
// declaration: world headers at top level, export/import function lines
// inside a world body. Every original line is reproduced unchanged and in
// order.
//
// This is a line scanner, not a parser. It recognizes exactly two
// structural shapes: a line whose trimmed form starts with "world ", and,
// inside a world body, lines starting with "export " or "import " carrying
// a colon. Anything else degrades to "no documentation inserted". It never
// fails.
func Annotate(text string, tree *witdoc.Tree) string {
	var b strings.Builder
	b.Grow(len(text))

	lines := strings.Split(text, "\n")
	// Split leaves a trailing empty element when text ends in a newline;
	// dropping it here and joining with "\n" below reproduces the original
	// line structure exactly.
	trailingNewline := false
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
		trailingNewline = true
	}

	state := stateTopLevel
	var world *witdoc.WorldDocs

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch state {
		case stateTopLevel:
			if strings.HasPrefix(trimmed, "world ") {
				world = enterWorld(&b, tree, trimmed)
				state = stateWorldBody
			}

		case stateWorldBody:
			if strings.HasPrefix(trimmed, "export ") || strings.HasPrefix(trimmed, "import ") {
				if name, ok := functionName(trimmed); ok {
					if f, ok := world.Function(name); ok && f.Docs != nil {
						writeDocs(&b, *f.Docs, indentOf(line))
					}
				}
			}
			if trimmed == "}" {
				state = stateTopLevel
				world = nil
			}
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	out := b.String()
	if !trailingNewline {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

// enterWorld emits the world's documentation (if any) and returns the
// resolved world docs for the body scan. The world name is the second
// whitespace-separated token; with fewer than two tokens the name falls to
// "unknown", which can still resolve through the single-world fallback.
func enterWorld(b *strings.Builder, tree *witdoc.Tree, trimmed string) *witdoc.WorldDocs {
	name := "unknown"
	if parts := strings.Fields(trimmed); len(parts) >= 2 {
		name = parts[1]
	}

	world, ok := tree.World(name)
	if !ok {
		return nil
	}
	if world.Docs != nil {
		writeDocs(b, *world.Docs, "")
	}
	return world
}

// functionName extracts the declared name from an export/import line: the
// second whitespace-separated token before the first colon. Lines without
// that shape carry no name and get no documentation lookup.
func functionName(trimmed string) (string, bool) {
	before, _, found := strings.Cut(trimmed, ":")
	if !found {
		return "", false
	}
	parts := strings.Fields(before)
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

// writeDocs emits one comment line per documentation line, each carrying
// the declaration's exact leading whitespace.
func writeDocs(b *strings.Builder, docs string, indent string) {
	for _, docLine := range strings.Split(docs, "\n") {
		b.WriteString(indent)
		b.WriteString(commentPrefix)
		b.WriteString(docLine)
		b.WriteByte('\n')
	}
}

// indentOf returns the leading whitespace of a line.
func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
