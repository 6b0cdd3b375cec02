package render

import (
	"fmt"
	"io"

	"github.com/wippyai/witdoc"
)

// Markdown writes the documentation tree as a markdown document.
func Markdown(w io.Writer, tree *witdoc.Tree, opts Options) error {
	if tree.Empty() {
		_, err := fmt.Fprintln(w, "No world documentation found")
		return err
	}

	for _, name := range sortedWorlds(tree) {
		world := tree.Worlds[name]

		if !opts.FunctionsOnly {
			fmt.Fprintf(w, "# World: %s\n\n", name)
			if world.Docs != nil {
				fmt.Fprintf(w, "%s\n\n", *world.Docs)
			} else {
				fmt.Fprintf(w, "%s\n\n", noDocsMarkdown)
			}
		}

		if opts.WorldsOnly {
			continue
		}
		if err := markdownFuncs(w, "## Exported Functions", world.FuncExports, opts); err != nil {
			return err
		}
		if err := markdownFuncs(w, "## Imported Functions", world.FuncImports, opts); err != nil {
			return err
		}
	}
	return nil
}

func markdownFuncs(w io.Writer, heading string, funcs map[string]*witdoc.FuncDocs, opts Options) error {
	if len(funcs) == 0 {
		return nil
	}
	if !opts.FunctionsOnly {
		if _, err := fmt.Fprintf(w, "%s\n\n", heading); err != nil {
			return err
		}
	}
	for _, name := range sortedFuncs(funcs) {
		f := funcs[name]
		fmt.Fprintf(w, "### `%s`\n\n", name)
		if f.Docs != nil {
			fmt.Fprintf(w, "%s\n\n", *f.Docs)
		} else {
			fmt.Fprintf(w, "%s\n\n", noDocsMarkdown)
		}
	}
	return nil
}
