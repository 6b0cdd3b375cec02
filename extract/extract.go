package extract

import (
	"context"
	"iter"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/witdoc"
	"github.com/wippyai/witdoc/errors"
	"github.com/wippyai/witdoc/wasmtools"
)

// FromDir resolves a WIT source directory through the external resolver and
// extracts its documentation tree. It returns the package identifier of the
// documented package alongside the tree.
func FromDir(ctx context.Context, witDir string) (string, *witdoc.Tree, error) {
	res, err := wasmtools.ResolveWIT(ctx, witDir)
	if err != nil {
		return "", nil, err
	}
	return FromResolve(res)
}

// FromResolve extracts documentation from an already-resolved WIT package
// set. The resolver serializes dependency packages before the package it
// was asked about, so the last package in the resolve is the root.
func FromResolve(res *wit.Resolve) (string, *witdoc.Tree, error) {
	if res == nil || len(res.Packages) == 0 {
		return "", nil, errors.NotFound(errors.PhaseExtract, "package", "WIT resolve")
	}
	pkg := res.Packages[len(res.Packages)-1]
	return pkg.Name.String(), FromPackage(pkg), nil
}

// FromPackage walks one package's worlds into a documentation tree. Every
// world is registered so its name resolves at view time; function entries
// are recorded only when they carry documentation.
func FromPackage(pkg *wit.Package) *witdoc.Tree {
	tree := &witdoc.Tree{Worlds: make(map[string]*witdoc.WorldDocs)}

	funcs := 0
	for name, world := range pkg.Worlds.All() {
		wd := &witdoc.WorldDocs{}
		if world.Docs.Contents != "" {
			docs := world.Docs.Contents
			wd.Docs = &docs
		}
		wd.FuncExports = functionDocs(world.Exports.All())
		wd.FuncImports = functionDocs(world.Imports.All())
		funcs += len(wd.FuncExports) + len(wd.FuncImports)
		tree.Worlds[name] = wd
	}

	Logger().Debug("extracted package docs",
		zap.String("package", pkg.Name.String()),
		zap.Int("worlds", len(tree.Worlds)),
		zap.Int("functions", funcs),
	)
	return tree
}

// functionDocs collects documented function items from a world's import or
// export map. Interfaces and types in the same map have no place in the
// documentation tree and are skipped.
func functionDocs(items iter.Seq2[string, wit.WorldItem]) map[string]*witdoc.FuncDocs {
	var out map[string]*witdoc.FuncDocs
	for name, item := range items {
		f, ok := item.(*wit.Function)
		if !ok || f.Docs.Contents == "" {
			continue
		}
		if out == nil {
			out = make(map[string]*witdoc.FuncDocs)
		}
		docs := f.Docs.Contents
		out[name] = &witdoc.FuncDocs{Docs: &docs}
	}
	return out
}
