// Package mainerr provides the error type returned from a program's entry
// point.
//
// Any error converts into an *Error through From, so a top-level run
// function can return failures from unrelated subsystems without adapting
// each of them. The message of the converted error is kept verbatim.
package mainerr

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Error owns the error that terminated the program.
type Error struct {
	err error
}

// From converts err into an *Error. A nil err, including a nil *Error, yields
// an untyped nil and an *Error is returned unchanged.
func From(err error) error {
	if isNil(err) {
		return nil
	}
	if me, ok := err.(*Error); ok {
		return me
	}
	return &Error{err: err}
}

// isNil reports whether err is nil or an *Error holding nothing.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	me, ok := err.(*Error)
	return ok && (me == nil || me.err == nil)
}

func (e *Error) Error() string {
	if e == nil || e.err == nil {
		return "<nil>"
	}
	return e.err.Error()
}

// Unwrap returns the converted error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Format prints the message for %v and %s. With %+v every error further down
// the chain is appended on its own "caused by:" line.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			if e == nil || e.err == nil {
				return
			}
			for _, cause := range Chain(e.err)[1:] {
				_, _ = fmt.Fprintf(s, "\ncaused by: %s", cause.Error())
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// Chain returns err followed by every error reachable through Unwrap.
// Errors joined with errors.Join are walked depth first.
func Chain(err error) []error {
	var chain []error
	var walk func(error)
	walk = func(err error) {
		for err != nil {
			chain = append(chain, err)
			if joined, ok := err.(interface{ Unwrap() []error }); ok {
				for _, e := range joined.Unwrap() {
					walk(e)
				}
				return
			}
			err = errors.Unwrap(err)
		}
	}
	walk(err)
	return chain
}

// ExitCoder is implemented by errors that choose the process exit status.
type ExitCoder interface {
	ExitCode() int
}

// ExitCode returns the status a program failing with err should exit with:
// 0 for nil, the first ExitCoder on the chain if any, and 1 otherwise.
func ExitCode(err error) int {
	if isNil(err) {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

// Report writes the message of err followed by a newline to w.
func Report(w io.Writer, err error) {
	if isNil(err) {
		return
	}
	_, _ = fmt.Fprintln(w, err.Error())
}

var exit = os.Exit

// Exit reports err on stderr and terminates the process with its exit code.
// It returns without doing anything when err is nil.
func Exit(err error) {
	ExitWith(err, func(err error) { Report(os.Stderr, err) })
}

// ExitWith is like Exit but prints the error with report.
func ExitWith(err error, report func(error)) {
	if isNil(err) {
		return
	}
	report(From(err))
	exit(ExitCode(err))
}

// Main runs run and exits through Exit if it fails.
func Main(run func() error) {
	Exit(run())
}
