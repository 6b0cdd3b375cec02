package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/witdoc/errors"
	"github.com/wippyai/witdoc/extract"
	"github.com/wippyai/witdoc/rewrite"
	"github.com/wippyai/witdoc/section"
)

func main() {
	var (
		component = flag.String("component", "", "Path to the component wasm file")
		witDir    = flag.String("wit-dir", "", "WIT package dir whose docstrings to embed")
		out       = flag.String("out", "", "Output component path (default: <stem>.docs.wasm alongside the input)")
		inplace   = flag.Bool("inplace", false, "Overwrite the input file in place")
		verbose   = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *component == "" || *witDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: wit-docs-inject -component <file.wasm> -wit-dir <dir> [-out <file.wasm> | -inplace]")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			rewrite.SetLogger(logger)
			extract.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if err := run(*component, *witDir, *out, *inplace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(component, witDir, out string, inplace bool) error {
	ctx := context.Background()

	input, err := os.ReadFile(component)
	if err != nil {
		return errors.IO(errors.PhaseRead, component, err)
	}

	pkgID, tree, err := extract.FromDir(ctx, witDir)
	if err != nil {
		return err
	}

	payload, err := section.EncodeDocs(tree)
	if err != nil {
		return err
	}

	rewritten, err := rewrite.Rewrite(input, section.Name, payload)
	if err != nil {
		return err
	}

	outPath := outputPath(component, out, inplace)
	if err := os.WriteFile(outPath, rewritten, 0o644); err != nil {
		return errors.IO(errors.PhaseWrite, outPath, err)
	}

	fmt.Fprintf(os.Stderr, "Injected %s docs for %s into %s\n", section.Name, pkgID, outPath)
	return nil
}

// outputPath picks the destination: explicit -inplace, explicit -out, or a
// derived path with a .docs.wasm suffix next to the input, falling back to
// .docs.injected.wasm if that would collide with the input itself.
func outputPath(component, out string, inplace bool) string {
	if inplace {
		return component
	}
	if out != "" {
		return out
	}

	dir := filepath.Dir(component)
	base := filepath.Base(component)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	derived := filepath.Join(dir, stem+".docs.wasm")
	if derived == filepath.Clean(component) {
		derived = filepath.Join(dir, stem+".docs.injected.wasm")
	}
	return derived
}
