package opt

// Map transforms the value through mapper when present. The result is
// rewrapped with OfNilable, so a nil-like mapped value collapses to empty.
// Fallible-call state on the input is not carried over.
func Map[T, U any](o Option[T], mapper func(T) U) Option[U] {
	if mapper == nil {
		panic("opt: nil mapper")
	}
	if !o.present {
		return Empty[U]()
	}
	return OfNilable(mapper(o.value))
}

// MapTo applies mapper to the raw wrapped value with no presence guard:
// an empty Option hands mapper T's zero value. It is the unguarded
// unwrap-and-transform escape hatch.
func MapTo[T, U any](o Option[T], mapper func(T) U) U {
	if mapper == nil {
		panic("opt: nil mapper")
	}
	return mapper(o.value)
}

// FlatMap chains the value through a mapper that produces its own Option.
// An empty input short-circuits to empty without invoking mapper.
func FlatMap[T, U any](o Option[T], mapper func(T) Option[U]) Option[U] {
	if mapper == nil {
		panic("opt: nil mapper")
	}
	if !o.present {
		return Empty[U]()
	}
	return mapper(o.value)
}

// MapOrElse folds presence into a single value: mapper runs on the value
// when present, orElse supplies the value otherwise. Exactly one branch
// executes.
func MapOrElse[T, U any](o Option[T], mapper func(T) U, orElse func() U) U {
	if o.present {
		return mapper(o.value)
	}
	return orElse()
}

// SupplyOrElse is MapOrElse with a value-independent present branch.
func SupplyOrElse[T, U any](o Option[T], ifPresent func() U, orElse func() U) U {
	if ifPresent == nil {
		panic("opt: nil ifPresent")
	}
	if orElse == nil {
		panic("opt: nil orElse")
	}
	if o.present {
		return ifPresent()
	}
	return orElse()
}

// OnSuccessTo maps the value to a new type when the last Try succeeded.
// An empty or untracked input collapses to empty. A failed outcome is
// carried over without invoking mapper; the failing value cannot cross
// the type change, so the carrier holds U's zero value alongside the
// preserved error.
func OnSuccessTo[T, U any](o Option[T], mapper func(T) U) Option[U] {
	if mapper == nil {
		panic("opt: nil mapper")
	}
	if !o.present || o.outcome == OutcomeUnset {
		return Empty[U]()
	}
	if o.outcome == OutcomeFailed {
		return carryFailure[U](o.err)
	}
	return tracked(mapper(o.value), OutcomeSucceeded, nil)
}

// TryMap is the type-changing form of Option.Try. On failure the original
// value cannot cross the type change, so the returned Option carries only
// the failed outcome and the error.
func TryMap[T, U any](o Option[T], f func(T) (U, error)) Option[U] {
	if f == nil {
		panic("opt: nil f")
	}
	if !o.present {
		return Empty[U]()
	}
	v, err := f(o.value)
	if err != nil {
		return carryFailure[U](err)
	}
	return tracked(v, OutcomeSucceeded, nil)
}

// IsInstance reports whether the wrapped value's dynamic type is U.
// Empty Options are never an instance of anything.
func IsInstance[U any, T any](o Option[T]) bool {
	if !o.present {
		return false
	}
	_, ok := any(o.value).(U)
	return ok
}

// IfInstance returns the value narrowed to U when its dynamic type is U,
// otherwise empty.
func IfInstance[U any, T any](o Option[T]) Option[U] {
	if !o.present {
		return Empty[U]()
	}
	if u, ok := any(o.value).(U); ok {
		return OfNilable(u)
	}
	return Empty[U]()
}

// IfNotInstance returns the original value when it is present and not a U,
// otherwise empty.
func IfNotInstance[U any, T any](o Option[T]) Option[T] {
	if !o.present || IsInstance[U](o) {
		return Empty[T]()
	}
	return OfNilable(o.value)
}

// IfInstanceDo runs action on the value when its dynamic type is U.
func IfInstanceDo[U any, T any](o Option[T], action func(T)) {
	if action == nil {
		panic("opt: nil action")
	}
	if IsInstance[U](o) {
		action(o.value)
	}
}

// IfInstanceRun runs fn when the value's dynamic type is U.
func IfInstanceRun[U any, T any](o Option[T], fn func()) {
	if fn == nil {
		panic("opt: nil fn")
	}
	if IsInstance[U](o) {
		fn()
	}
}
