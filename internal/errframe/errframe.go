// Package errframe implements the kernel's nestable error-handler stack
// (spec.md §4.9, §7). It is adapted from the teacher runtime's
// internal/errors package: a typed error carrying a kind and a message,
// here extended with a saved-state snapshot and a pushdown stack of
// handlers instead of a single flat error value.
package errframe

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Kind is one of the error kinds enumerated in spec.md §7.
type Kind string

const (
	InvalidToken         Kind = "InvalidToken"
	Memory               Kind = "Memory"
	CannotBeConverted    Kind = "CannotBeConverted"
	Dimension            Kind = "Dimension"
	SingularMatrix       Kind = "SingularMatrix"
	ValuationNotPositive Kind = "ValuationNotPositive"
)

// KernelError is the error value thrown through a Frame.
type KernelError struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *KernelError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap lets errors.Is/errors.As see through to the wrapped cause.
func (e *KernelError) Unwrap() error { return e.cause }

// New builds a KernelError with no wrapped cause.
func New(kind Kind, format string, args ...interface{}) *KernelError {
	return &KernelError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a KernelError around a lower-level failure, attaching a
// pkg/errors stack trace to the cause so callers that care can recover
// it with errors.Cause or print it with "%+v".
func Wrap(kind Kind, cause error, format string, args ...interface{}) *KernelError {
	return &KernelError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		cause:   errors.WithStack(cause),
	}
}

// MemoryExhausted builds the Memory kind KernelError with human-readable
// byte counts, per spec.md §4.1's failure semantics.
func MemoryExhausted(requested, available uint64) *KernelError {
	return New(Memory, "arena exhausted requesting %s with %s available",
		humanize.Bytes(requested), humanize.Bytes(available))
}

// Handler is invoked by Throw. If it returns, the frame's policy is to
// abort (spec.md §7: "if the handler returns, the program aborts"), so
// a Handler that wants normal control flow must not return — it should
// panic with *KernelError (see DefaultHandler) or otherwise transfer
// control out of the call that triggered Throw.
type Handler func(err *KernelError)

// State is the saved execution state captured by Catch, restored by
// Throw before invoking the handler (spec.md §4.9).
type State struct {
	IntMod           interface{} // ambient integer modulus, opaque to errframe
	Precision        uint
	RoundingMode     int
	Base             int
	Presimplify      bool
	DefaultDomain    uint64
	SetStrCache      map[string]interface{}
}

type savedFrame struct {
	state   State
	handler Handler
}

// Frame is a per-thread pushdown stack of saved states and handlers.
type Frame struct {
	stack     []savedFrame
	lastKind  Kind
	lastMsg   string
	lastError *KernelError
}

// NewFrame returns an empty error frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Catch captures the current state, pushes it, and installs handler as
// the frame's active handler.
func (f *Frame) Catch(state State, handler Handler) {
	f.stack = append(f.stack, savedFrame{state: state, handler: handler})
}

// Uncatch pops the top frame on a normal return path; it restores no
// state, since the caller kept whatever state it mutated.
func (f *Frame) Uncatch() {
	if len(f.stack) == 0 {
		return
	}
	f.stack = f.stack[:len(f.stack)-1]
}

// Throw restores the previous frame's state (the caller must apply the
// returned State itself, since errframe does not know how to install it
// into a Config), records the last error, and invokes the installed
// handler. If no frame is installed, Throw returns a zero State and the
// caller is expected to abort with a diagnostic (spec.md §7).
func (f *Frame) Throw(err *KernelError) (State, bool) {
	f.lastKind = err.Kind
	f.lastMsg = err.Message
	f.lastError = err
	if len(f.stack) == 0 {
		return State{}, false
	}
	top := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	if top.handler != nil {
		top.handler(err)
	}
	return top.state, true
}

// LastError returns the most recent error thrown on this frame, and
// whether one has ever been thrown.
func (f *Frame) LastError() (*KernelError, bool) {
	if f.lastError == nil {
		return nil, false
	}
	return f.lastError, true
}

// Depth reports how many handlers are currently installed.
func (f *Frame) Depth() int { return len(f.stack) }

// DefaultHandler panics with err, which is the Go realization of
// spec.md §4.9's "long-jump to a caller-provided return point": a
// recover() at the outer boundary plays the role of the jump target.
func DefaultHandler(err *KernelError) {
	panic(err)
}
