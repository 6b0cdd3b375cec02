package render

import (
	"fmt"
	"io"

	"github.com/wippyai/witdoc"
)

// Pretty writes a human-readable terminal dump of the documentation tree.
func Pretty(w io.Writer, tree *witdoc.Tree, opts Options) error {
	if tree.Empty() {
		_, err := fmt.Fprintln(w, "No world documentation found")
		return err
	}

	for _, name := range sortedWorlds(tree) {
		world := tree.Worlds[name]

		if !opts.FunctionsOnly {
			fmt.Fprintf(w, "🌍 World: %s\n", name)
			if world.Docs != nil {
				fmt.Fprintf(w, "   📝 %s\n", *world.Docs)
			} else {
				fmt.Fprintf(w, "   📝 %s\n", noDocs)
			}
			fmt.Fprintln(w)
		}

		if opts.WorldsOnly {
			continue
		}
		if err := prettyFuncs(w, "📤 Exported Functions:", world.FuncExports, opts); err != nil {
			return err
		}
		if err := prettyFuncs(w, "📥 Imported Functions:", world.FuncImports, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyFuncs(w io.Writer, heading string, funcs map[string]*witdoc.FuncDocs, opts Options) error {
	if len(funcs) == 0 {
		return nil
	}
	if !opts.FunctionsOnly {
		if _, err := fmt.Fprintln(w, heading); err != nil {
			return err
		}
	}
	for _, name := range sortedFuncs(funcs) {
		f := funcs[name]
		if f.Docs != nil {
			fmt.Fprintf(w, "   🔧 %s: %s\n", name, *f.Docs)
		} else {
			fmt.Fprintf(w, "   🔧 %s: %s\n", name, noDocs)
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
