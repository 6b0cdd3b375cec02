package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/witdoc/errors"
	"github.com/wippyai/witdoc/extract"
	"github.com/wippyai/witdoc/inject"
	"github.com/wippyai/witdoc/render"
	"github.com/wippyai/witdoc/rewrite"
	"github.com/wippyai/witdoc/section"
	"github.com/wippyai/witdoc/wasmtools"
)

func main() {
	var (
		format        = flag.String("format", "pretty", "Output format: pretty, json, markdown, html, wit")
		functionsOnly = flag.Bool("functions-only", false, "Show function documentation only")
		worldsOnly    = flag.Bool("worlds-only", false, "Show world documentation only")
		interactive   = flag.Bool("i", false, "Interactive mode with TUI")
		verbose       = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: wit-docs-view [-format pretty|json|markdown|html|wit] [-functions-only] [-worlds-only] <file.wasm>")
		fmt.Fprintln(os.Stderr, "       wit-docs-view -i <file.wasm>  (interactive mode)")
		os.Exit(1)
	}
	wasmFile := flag.Arg(0)

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			rewrite.SetLogger(logger)
			extract.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if *interactive {
		if err := runInteractive(wasmFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(wasmFile, *format, *functionsOnly, *worldsOnly); err != nil {
		if stderrors.Is(err, errNoSection) {
			fmt.Fprintf(os.Stderr, "No %s section found in %s\n", section.Name, wasmFile)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// errNoSection marks the absence of embedded docs, which gets its own exit
// code so scripts can tell "not annotated" from "broken".
var errNoSection = &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindNotFound}

func run(wasmFile, format string, functionsOnly, worldsOnly bool) error {
	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return errors.IO(errors.PhaseRead, wasmFile, err)
	}

	tree, ok, err := section.Extract(data)
	if err != nil {
		return err
	}
	if !ok {
		return errNoSection
	}

	opts := render.Options{
		FunctionsOnly: functionsOnly,
		WorldsOnly:    worldsOnly,
	}

	switch format {
	case "pretty":
		return render.Pretty(os.Stdout, tree, opts)
	case "json":
		return render.JSON(os.Stdout, tree)
	case "markdown":
		return render.Markdown(os.Stdout, tree, opts)
	case "html":
		return render.HTML(os.Stdout, tree, opts)
	case "wit":
		text, err := wasmtools.WIT(context.Background(), wasmFile)
		if err != nil {
			return err
		}
		fmt.Print(inject.Annotate(text, tree))
		return nil
	default:
		return errors.InvalidData(errors.PhaseRender, fmt.Sprintf("unknown format %q", format))
	}
}
