package opt

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Outcome records the result of the most recent fallible call run against
// an Option via Try. It never returns to OutcomeUnset once tracked.
type Outcome int8

const (
	// OutcomeUnset means no fallible call has been run since construction.
	OutcomeUnset Outcome = iota
	// OutcomeSucceeded means the last fallible call returned without error.
	OutcomeSucceeded
	// OutcomeFailed means the last fallible call returned an error.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unset"
	}
}

// Option wraps a possibly absent value together with the outcome of the
// last fallible call run against it. The zero value is the empty Option:
// it carries no value, no outcome and no error.
type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	present   bool
	outcome   Outcome
	err       error
}

// Of wraps a value. The result is always present, even around a typed nil;
// use OfNilable to collapse nil-like values to the empty Option.
func Of[T any](v T) Option[T] {
	return Option[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		present:   true,
	}
}

// OfFunc wraps the value produced by supply.
func OfFunc[T any](supply func() T) Option[T] {
	if supply == nil {
		panic("opt: nil supply")
	}
	return Of(supply())
}

// OfNilable wraps a value, collapsing nil-like values (nil pointers, maps,
// slices, channels, funcs and nil interfaces) to the empty Option.
func OfNilable[T any](v T) Option[T] {
	if IsNil(v) {
		return Empty[T]()
	}
	return Of(v)
}

// Empty returns the empty Option, the canonical "no value" container.
func Empty[T any]() Option[T] {
	return Option[T]{}
}

// tracked builds a present Option carrying fallible-call state. A nil-like
// value collapses to the empty Option, dropping the state with it.
func tracked[T any](v T, outcome Outcome, err error) Option[T] {
	if IsNil(v) {
		return Empty[T]()
	}
	return Option[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		present:   true,
		outcome:   outcome,
		err:       err,
	}
}

// carryFailure keeps a failed outcome alive across a type change. The
// failing value cannot cross the change, so the carrier holds U's zero
// value; terminal operations read only the outcome and the error.
func carryFailure[U any](err error) Option[U] {
	var zero U
	return Option[U]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     zero,
		present:   true,
		outcome:   OutcomeFailed,
		err:       err,
	}
}

// valueOnly rewraps the value without any fallible-call state.
func (o Option[T]) valueOnly() Option[T] {
	if !o.present {
		return Empty[T]()
	}
	return OfNilable(o.value)
}

// Get returns the wrapped value, or T's zero value when empty.
func (o Option[T]) Get() T {
	return o.value
}

// Err returns the error captured by the last Try, if any.
func (o Option[T]) Err() error {
	return o.err
}

// Outcome returns the state of the fallible-call tracker.
func (o Option[T]) Outcome() Outcome {
	return o.outcome
}

// IsPresent reports whether the Option holds a value. Presence is decided
// at construction only; the fallible-call tracker never affects it.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// IsEmpty reports whether the Option is empty.
func (o Option[T]) IsEmpty() bool {
	return !o.present
}

// IsNotEmpty reports whether the Option holds a value.
func (o Option[T]) IsNotEmpty() bool {
	return o.present
}

// Id returns the Option's identity, assigned at construction.
// The empty Option has uuid.Nil.
func (o Option[T]) Id() uuid.UUID {
	return o.id
}

// CreatedAt returns the construction time (UTC).
func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}

// Apply invokes action on the value when present and returns a value-only
// Option: any fallible-call state on the receiver is dropped. Run Try
// again downstream to regain it.
func (o Option[T]) Apply(action func(T)) Option[T] {
	if o.present {
		action(o.value)
	}
	return o.valueOnly()
}

// And runs fn unconditionally and returns a value-only Option, dropping
// fallible-call state like Apply.
func (o Option[T]) And(fn func()) Option[T] {
	if fn == nil {
		panic("opt: nil fn")
	}
	fn()
	return o.valueOnly()
}

// IfPresent runs action on the value when present.
func (o Option[T]) IfPresent(action func(T)) {
	if o.present {
		action(o.value)
	}
}

// IfEmpty runs action when the Option is empty.
func (o Option[T]) IfEmpty(action func()) {
	if !o.present {
		action()
	}
}

// IfPresentOrElse runs exactly one of the two branches: action on the
// value when present, otherwise otherwise.
func (o Option[T]) IfPresentOrElse(action func(T), otherwise func()) {
	if o.present {
		action(o.value)
		return
	}
	otherwise()
}

// Filter keeps a present value that passes pred, returning the receiver
// itself; a failing value becomes empty, and an empty receiver stays as is.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if pred == nil {
		panic("opt: nil predicate")
	}
	if !o.present {
		return o
	}
	if pred(o.value) {
		return o
	}
	return Empty[T]()
}

// OrElse returns the value when present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// OrElseGet returns the value when present, otherwise the value produced
// by supply.
func (o Option[T]) OrElseGet(supply func() T) T {
	if o.present {
		return o.value
	}
	return supply()
}

// OrElseErr returns the value when present, otherwise T's zero value and
// the error produced by errFn.
func (o Option[T]) OrElseErr(errFn func() error) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	return zero, errFn()
}

// Try runs f against the value and records the outcome on the returned
// Option instead of propagating the error. On success the result is
// wrapped with OutcomeSucceeded (a nil-like result collapses to empty);
// on failure the original value is kept and the error is stored with
// OutcomeFailed. An empty receiver stays empty with the outcome unset.
// Try is the only transition into the succeeded and failed states.
func (o Option[T]) Try(f func(T) (T, error)) Option[T] {
	if f == nil {
		panic("opt: nil f")
	}
	if !o.present {
		return Empty[T]()
	}
	v, err := f(o.value)
	if err != nil {
		return tracked(o.value, OutcomeFailed, err)
	}
	return tracked(v, OutcomeSucceeded, nil)
}

// OnSuccess runs action on the value when the last Try succeeded. An empty
// or untracked receiver collapses to empty; otherwise value, outcome and
// error pass through unchanged — a failed state is never cleared here,
// only its side effect is skipped.
func (o Option[T]) OnSuccess(action func(T)) Option[T] {
	if action == nil {
		panic("opt: nil action")
	}
	if !o.present || o.outcome == OutcomeUnset {
		return Empty[T]()
	}
	if o.outcome == OutcomeSucceeded {
		action(o.value)
	}
	return tracked(o.value, o.outcome, o.err)
}

// OnFailure returns the error produced by errFn when the last Try failed.
// Empty receivers stay empty, untracked ones are rewrapped value-only, and
// a succeeded receiver passes through unchanged, all with a nil error.
func (o Option[T]) OnFailure(errFn func() error) (Option[T], error) {
	if errFn == nil {
		panic("opt: nil errFn")
	}
	if !o.present {
		return Empty[T](), nil
	}
	switch o.outcome {
	case OutcomeUnset:
		return o.valueOnly(), nil
	case OutcomeSucceeded:
		return tracked(o.value, o.outcome, o.err), nil
	}
	return o, errFn()
}

// OnFailureWrap behaves like OnFailure but joins the captured error into
// the produced one, so the root failure stays reachable through errors.Is
// and Errors.
func (o Option[T]) OnFailureWrap(errFn func() error) (Option[T], error) {
	if errFn == nil {
		panic("opt: nil errFn")
	}
	if !o.present {
		return Empty[T](), nil
	}
	switch o.outcome {
	case OutcomeUnset:
		return o.valueOnly(), nil
	case OutcomeSucceeded:
		return tracked(o.value, o.outcome, o.err), nil
	}
	return o, errors.Join(errFn(), o.err)
}

// OnFailureErr returns the captured error itself when the last Try failed,
// unwrapped exactly one level when it carries a cause. Empty, untracked
// and succeeded receivers behave as in OnFailure.
func (o Option[T]) OnFailureErr() (Option[T], error) {
	if !o.present {
		return Empty[T](), nil
	}
	switch o.outcome {
	case OutcomeUnset:
		return o.valueOnly(), nil
	case OutcomeSucceeded:
		return tracked(o.value, o.outcome, o.err), nil
	}
	if cause := errors.Unwrap(o.err); cause != nil {
		return o, cause
	}
	return o, o.err
}
