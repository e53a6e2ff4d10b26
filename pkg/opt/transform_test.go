package opt

import (
	"errors"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	t.Parallel()
	o := Map(Of(21), func(n int) string { return strconv.Itoa(n * 2) })
	if !o.IsPresent() || o.Get() != "42" {
		t.Fatalf("expected present \"42\", got: present=%v, val=%q", o.IsPresent(), o.Get())
	}
}

func TestMap_EmptyNeverInvokesMapper(t *testing.T) {
	t.Parallel()
	o := Map(Empty[int](), func(int) string {
		t.Fatalf("mapper must not run on empty")
		return ""
	})
	if !o.IsEmpty() {
		t.Fatalf("expected empty")
	}
}

func TestMap_NilResultCollapsesToEmpty(t *testing.T) {
	t.Parallel()
	o := Map(Of(1), func(int) *int { return nil })
	if !o.IsEmpty() {
		t.Fatalf("expected nil mapped value to collapse to empty")
	}
}

func TestMap_DropsTrackingState(t *testing.T) {
	t.Parallel()
	failed := Of(1).Try(func(int) (int, error) { return 0, errors.New("x") })
	o := Map(failed, func(n int) int { return n })
	if o.Outcome() != OutcomeUnset || o.Err() != nil {
		t.Fatalf("expected tracking state dropped, got: outcome=%v, err=%v", o.Outcome(), o.Err())
	}
}

func TestMapTo_NoPresenceGuard(t *testing.T) {
	t.Parallel()
	if got := MapTo(Of(3), func(n int) int { return n * 3 }); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	// empty hands the mapper the zero value
	if got := MapTo(Empty[int](), func(n int) int { return n + 1 }); got != 1 {
		t.Fatalf("expected 1 from zero value, got %d", got)
	}
}

func TestFlatMap(t *testing.T) {
	t.Parallel()
	o := FlatMap(Of(2), func(n int) Option[string] { return Of(strconv.Itoa(n)) })
	if !o.IsPresent() || o.Get() != "2" {
		t.Fatalf("expected present \"2\", got: present=%v, val=%q", o.IsPresent(), o.Get())
	}

	o = FlatMap(Empty[int](), func(int) Option[string] {
		t.Fatalf("mapper must not run on empty")
		return Empty[string]()
	})
	if !o.IsEmpty() {
		t.Fatalf("expected empty")
	}

	// mapper's own empty is a valid result
	if o := FlatMap(Of(2), func(int) Option[string] { return Empty[string]() }); !o.IsEmpty() {
		t.Fatalf("expected mapper's empty returned directly")
	}
}

func TestMapOrElse(t *testing.T) {
	t.Parallel()
	got := MapOrElse(Of(4), func(n int) string { return strconv.Itoa(n) }, func() string { return "none" })
	if got != "4" {
		t.Fatalf("expected \"4\", got %q", got)
	}
	got = MapOrElse(Empty[int](), func(n int) string { return strconv.Itoa(n) }, func() string { return "none" })
	if got != "none" {
		t.Fatalf("expected \"none\", got %q", got)
	}
}

func TestSupplyOrElse(t *testing.T) {
	t.Parallel()
	got := SupplyOrElse(Of(4), func() string { return "present" }, func() string { return "empty" })
	if got != "present" {
		t.Fatalf("expected \"present\", got %q", got)
	}
	got = SupplyOrElse(Empty[int](), func() string { return "present" }, func() string { return "empty" })
	if got != "empty" {
		t.Fatalf("expected \"empty\", got %q", got)
	}
}

func TestOnSuccessTo(t *testing.T) {
	t.Parallel()

	succeeded := Of(3).Try(func(n int) (int, error) { return n + 1, nil })
	o := OnSuccessTo(succeeded, func(n int) string { return strconv.Itoa(n) })
	if !o.IsPresent() || o.Get() != "4" || o.Outcome() != OutcomeSucceeded {
		t.Fatalf("expected succeeded \"4\", got: present=%v, val=%q, outcome=%v", o.IsPresent(), o.Get(), o.Outcome())
	}

	boom := errors.New("boom")
	failed := Of(3).Try(func(int) (int, error) { return 0, boom })
	o = OnSuccessTo(failed, func(int) string {
		t.Fatalf("mapper must not run on failure")
		return ""
	})
	if o.Outcome() != OutcomeFailed || !errors.Is(o.Err(), boom) {
		t.Fatalf("expected failed state carried, got: outcome=%v, err=%v", o.Outcome(), o.Err())
	}

	if o := OnSuccessTo(Of(3), strconv.Itoa); !o.IsEmpty() {
		t.Fatalf("untracked input must collapse to empty")
	}
	if o := OnSuccessTo(Empty[int](), strconv.Itoa); !o.IsEmpty() {
		t.Fatalf("empty input must stay empty")
	}
}

func TestTryMap(t *testing.T) {
	t.Parallel()

	o := TryMap(Of("12"), strconv.Atoi)
	if !o.IsPresent() || o.Get() != 12 || o.Outcome() != OutcomeSucceeded {
		t.Fatalf("expected succeeded 12, got: present=%v, val=%v, outcome=%v", o.IsPresent(), o.Get(), o.Outcome())
	}

	o = TryMap(Of("bad"), strconv.Atoi)
	if o.Outcome() != OutcomeFailed || o.Err() == nil {
		t.Fatalf("expected failed, got: outcome=%v, err=%v", o.Outcome(), o.Err())
	}

	if o := TryMap(Empty[string](), strconv.Atoi); !o.IsEmpty() || o.Outcome() != OutcomeUnset {
		t.Fatalf("expected empty unset, got: present=%v, outcome=%v", o.IsPresent(), o.Outcome())
	}
}

func TestTryMapThenOnFailureErr(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	o := TryMap(Of("x"), func(string) (int, error) { return 0, boom })
	_, err := o.OnFailureErr()
	if !errors.Is(err, boom) {
		t.Fatalf("expected captured error surfaced after type change, got %v", err)
	}
}

type shape interface{ sides() int }

type square struct{}

func (square) sides() int { return 4 }

type circle struct{}

func (circle) sides() int { return 0 }

func TestIsInstance(t *testing.T) {
	t.Parallel()
	var s shape = square{}
	o := Of(s)

	if !IsInstance[square](o) {
		t.Fatalf("expected square instance")
	}
	if IsInstance[circle](o) {
		t.Fatalf("did not expect circle instance")
	}
	if IsInstance[square](Empty[shape]()) {
		t.Fatalf("empty is never an instance")
	}
}

func TestIfInstance(t *testing.T) {
	t.Parallel()
	var s shape = square{}
	o := Of(s)

	narrowed := IfInstance[square](o)
	if narrowed.IsEmpty() || narrowed.Get().sides() != 4 {
		t.Fatalf("expected narrowed square")
	}
	if miss := IfInstance[circle](o); !miss.IsEmpty() {
		t.Fatalf("expected empty for wrong type")
	}
	if miss := IfInstance[square](Empty[shape]()); !miss.IsEmpty() {
		t.Fatalf("expected empty for empty input")
	}
}

func TestIfNotInstance(t *testing.T) {
	t.Parallel()
	var s shape = square{}
	o := Of(s)

	if kept := IfNotInstance[circle](o); kept.IsEmpty() {
		t.Fatalf("expected original kept when not an instance")
	}
	if dropped := IfNotInstance[square](o); !dropped.IsEmpty() {
		t.Fatalf("expected empty when value is an instance")
	}
	if dropped := IfNotInstance[circle](Empty[shape]()); !dropped.IsEmpty() {
		t.Fatalf("expected empty for empty input")
	}
}

func TestIfInstanceSideEffects(t *testing.T) {
	t.Parallel()
	var s shape = square{}
	o := Of(s)

	fired := false
	IfInstanceDo[square](o, func(shape) { fired = true })
	if !fired {
		t.Fatalf("expected action for matching type")
	}
	IfInstanceDo[circle](o, func(shape) { t.Fatalf("action must not fire for wrong type") })

	ran := false
	IfInstanceRun[square](o, func() { ran = true })
	if !ran {
		t.Fatalf("expected fn for matching type")
	}
	IfInstanceRun[circle](o, func() { t.Fatalf("fn must not fire for wrong type") })
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	if !IsNil(nil) || !IsNil((*int)(nil)) || !IsNil((map[string]int)(nil)) || !IsNil(([]int)(nil)) {
		t.Fatalf("expected nil-like values detected")
	}
	v := 1
	if IsNil(0) || IsNil("") || IsNil(&v) {
		t.Fatalf("expected non-nil values passed through")
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()
	if parts := Errors(nil); len(parts) != 0 {
		t.Fatalf("expected no parts for nil, got %v", parts)
	}
	single := errors.New("one")
	if parts := Errors(single); len(parts) != 1 || parts[0] != single {
		t.Fatalf("expected the error itself, got %v", parts)
	}
	joined := errors.Join(errors.New("a"), errors.New("b"))
	if parts := Errors(joined); len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %v", parts)
	}
}
