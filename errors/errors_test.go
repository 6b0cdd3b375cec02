package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := IO(PhaseRead, "app.wasm", fs.ErrNotExist)
	msg := err.Error()

	if !strings.HasPrefix(msg, "[read] io") {
		t.Errorf("missing phase/kind prefix: %q", msg)
	}
	if !strings.Contains(msg, "app.wasm") {
		t.Errorf("missing file context: %q", msg)
	}
	if !strings.Contains(msg, "caused by") {
		t.Errorf("missing cause: %q", msg)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := ParseFailed("component", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestIsMatchesPhaseAndKind(t *testing.T) {
	err := Subprocess("wasm-tools component wit", "no such file", nil)

	if !stderrors.Is(err, &Error{Phase: PhaseExec, Kind: KindSubprocess}) {
		t.Error("expected match on phase/kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseParse, Kind: KindSubprocess}) {
		t.Error("unexpected match on wrong phase")
	}
}

func TestSubprocessFoldsStderr(t *testing.T) {
	err := Subprocess("wasm-tools", "  bad input\n", nil)
	if !strings.Contains(err.Error(), "bad input") {
		t.Errorf("stderr not folded into detail: %q", err.Error())
	}
}

func TestNotFoundDetail(t *testing.T) {
	err := NotFound(PhaseParse, "custom section", "package-docs")
	if !strings.Contains(err.Error(), `"package-docs"`) {
		t.Errorf("missing quoted name: %q", err.Error())
	}
}
