package wasmtools

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"unicode/utf8"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/witdoc/errors"
)

// Binary is the wasm-tools executable invoked for WIT rendering and
// resolution. Overridable for tests and non-PATH installs.
var Binary = "wasm-tools"

// WIT returns the textual WIT rendering of a component, the output of
// `wasm-tools component wit <path>`.
func WIT(ctx context.Context, componentPath string) (string, error) {
	out, err := run(ctx, "component", "wit", componentPath)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", errors.InvalidUTF8(errors.PhaseExec, "wasm-tools output")
	}
	return string(out), nil
}

// ResolveWIT resolves a WIT source directory into a wit.Resolve via
// `wasm-tools component wit --json <dir>`.
func ResolveWIT(ctx context.Context, witDir string) (*wit.Resolve, error) {
	out, err := run(ctx, "component", "wit", "--json", "--all-features", witDir)
	if err != nil {
		return nil, err
	}
	res, err := wit.DecodeJSON(bytes.NewReader(out))
	if err != nil {
		return nil, errors.ParseFailed("wasm-tools WIT resolution", err)
	}
	return res, nil
}

// run invokes wasm-tools synchronously and returns its stdout. A missing
// binary, a non-zero exit or a hang cancellation all surface as subprocess
// errors carrying the tool's stderr.
func run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		command := Binary + " " + strings.Join(args, " ")
		return nil, errors.Subprocess(command, stderr.String(), err)
	}
	return stdout.Bytes(), nil
}
