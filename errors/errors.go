package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead    Phase = "read"    // reading input files
	PhaseParse   Phase = "parse"   // component binary or payload parsing
	PhaseExtract Phase = "extract" // WIT metadata extraction
	PhaseEncode  Phase = "encode"  // documentation payload encoding
	PhaseRewrite Phase = "rewrite" // component section rewrite
	PhaseExec    Phase = "exec"    // external tool invocation
	PhaseRender  Phase = "render"  // documentation rendering
	PhaseWrite   Phase = "write"   // writing output files
)

// Kind categorizes the error
type Kind string

const (
	KindIO          Kind = "io"
	KindInvalidData Kind = "invalid_data"
	KindNotFound    Kind = "not_found"
	KindSubprocess  Kind = "subprocess"
	KindEncoding    Kind = "encoding"
	KindInvalidUTF8 Kind = "invalid_utf8"
)

// Error is the structured error type used throughout the tool
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	File   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.File != "" {
		b.WriteString(" in ")
		b.WriteString(e.File)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// IO creates a file read/write error carrying the file path
func IO(phase Phase, file string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		File:  file,
		Cause: cause,
	}
}

// ParseFailed creates a structural parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Subprocess creates an external tool failure error. The tool's stderr, if
// any, is folded into the detail so the caller sees what the tool reported.
func Subprocess(command string, stderr string, cause error) *Error {
	detail := command
	if s := strings.TrimSpace(stderr); s != "" {
		detail = fmt.Sprintf("%s: %s", command, s)
	}
	return &Error{
		Phase:  PhaseExec,
		Kind:   KindSubprocess,
		Detail: detail,
		Cause:  cause,
	}
}

// Encoding creates a payload encoding error. Serialization of a well-formed
// tree does not fail; this guards the contract anyway.
func Encoding(cause error) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindEncoding,
		Detail: "encode documentation payload",
		Cause:  cause,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("%s is not valid UTF-8", what),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
