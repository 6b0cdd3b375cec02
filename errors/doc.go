// Package errors provides structured error types for the documentation
// tooling.
//
// Errors carry a Phase (where processing failed) and a Kind (what went
// wrong), plus file and operation context. The kinds cover io failures,
// structural parse failures, subprocess failures and defensive encoding
// failures. Errors support errors.Is matching on Phase/Kind pairs and
// unwrap to their cause.
package errors
