package wasmtools

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/witdoc/errors"
)

func withBinary(t *testing.T, name string) {
	t.Helper()
	old := Binary
	Binary = name
	t.Cleanup(func() { Binary = old })
}

func TestWITMissingBinary(t *testing.T) {
	withBinary(t, "wasm-tools-definitely-not-installed")

	_, err := WIT(context.Background(), "app.wasm")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseExec, Kind: errors.KindSubprocess}) {
		t.Errorf("expected subprocess error, got %v", err)
	}
}

func TestResolveWITMissingBinary(t *testing.T) {
	withBinary(t, "wasm-tools-definitely-not-installed")

	_, err := ResolveWIT(context.Background(), "wit/")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseExec, Kind: errors.KindSubprocess}) {
		t.Errorf("expected subprocess error, got %v", err)
	}
}

func TestRunNonZeroExitCarriesStderr(t *testing.T) {
	// sh is universally available in the test environment; have it fail
	// with a recognizable message on stderr.
	withBinary(t, "sh")

	_, err := run(context.Background(), "-c", "echo tool exploded >&2; exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if want := "tool exploded"; !strings.Contains(e.Detail, want) {
		t.Errorf("stderr %q not carried in detail %q", want, e.Detail)
	}
}

func TestRunCapturesStdout(t *testing.T) {
	withBinary(t, "sh")

	out, err := run(context.Background(), "-c", "printf 'world app {}'")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if string(out) != "world app {}" {
		t.Errorf("stdout: got %q", out)
	}
}
