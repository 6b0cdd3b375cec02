// Package witdoc embeds and retrieves WIT package documentation inside a
// WebAssembly component's "package-docs" custom section.
//
// The documentation travels as a versioned payload appended to the component
// binary without disturbing any other section, and can be rendered back out
// either as structured data or woven into the component's textual WIT
// rendering as /// comments.
//
// # Architecture Overview
//
// The repository is organized into small packages with distinct
// responsibilities:
//
//	witdoc/          Root package with the documentation tree model
//	├── extract/     WIT package metadata -> documentation tree
//	├── section/     Custom-section payload codec and section scan
//	├── rewrite/     Byte-preserving component rewrite with section append
//	├── inject/      /// comment injection into a textual WIT rendering
//	├── render/      pretty, markdown, JSON and HTML documentation dumps
//	├── wasmtools/   wasm-tools subprocess invocation
//	└── errors/      Structured error types for debugging
//
// # Injecting
//
// Extract documentation from a WIT source directory and embed it:
//
//	_, tree, err := extract.FromDir(ctx, "wit/")
//	payload, err := section.EncodeDocs(tree)
//	out, err := rewrite.Rewrite(componentBytes, section.Name, payload)
//
// # Viewing
//
// Pull the tree back out of a component and render it:
//
//	data, ok, err := section.Find(componentBytes, section.Name)
//	tree, err := section.DecodeDocs(data)
//	render.Markdown(os.Stdout, tree, render.Options{})
//
// Or weave it into the component's WIT rendering:
//
//	text, err := wasmtools.WIT(ctx, "app.wasm")
//	fmt.Print(inject.Annotate(text, tree))
//
// The cmd/wit-docs-inject and cmd/wit-docs-view commands wrap these
// pipelines for command-line use.
package witdoc
