// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package trace

import (
	"errors"

	"golang.org/x/xerrors"
)

// errMalformed is the cause wrapped into a KindParse TraceError when a
// trace line doesn't even have the right shape to attempt a hex parse.
var errMalformed = errors.New("trace: line does not match \"%c 0x%lx\"")

// ErrorKind classifies a trace/seed-loading error.
type ErrorKind int

const (
	// KindIO: open/read of a trace or seed file failed.
	KindIO ErrorKind = iota
	// KindParse: a single trace line did not match "%c 0x%lx".
	KindParse
)

// TraceError is any error this package returns.
type TraceError interface {
	error
	Kind() ErrorKind
}

type traceError struct {
	kind  ErrorKind
	msg   string
	cause error
}

func (e *traceError) Error() string   { return e.msg }
func (e *traceError) Kind() ErrorKind { return e.kind }
func (e *traceError) Unwrap() error   { return e.cause }

// newIOError wraps a file-open/read failure. This is the one fatal path
// in this package, so it carries an xerrors frame.
func newIOError(op, path string, cause error) error {
	wrapped := xerrors.Errorf("trace: %s %s: %w", op, path, cause)
	return &traceError{kind: KindIO, msg: wrapped.Error(), cause: wrapped}
}

// newParseError reports one unparseable trace line; non-fatal, the caller
// logs it and skips the record.
func newParseError(line string, cause error) error {
	return &traceError{kind: KindParse, msg: "trace: cannot parse line " + line, cause: cause}
}
