package either

import (
	"time"

	"github.com/google/uuid"

	"github.com/optkit/optkit/pkg/opt"
)

// Either holds exactly one of two payloads: a Left L or a Right R. The
// variant is fixed at construction and every combinator returns either the
// receiver itself or a newly constructed value.
type Either[L, R any] struct {
	id        uuid.UUID
	createdAt time.Time
	left      L
	right     R
	isRight   bool
}

// Left constructs the left variant.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		left:      v,
	}
}

// Right constructs the right variant.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		right:     v,
		isRight:   true,
	}
}

// IsLeft reports whether this is the left variant.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether this is the right variant.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left payload, or L's zero value on a Right.
func (e Either[L, R]) Left() L {
	return e.left
}

// Right returns the right payload, or R's zero value on a Left.
func (e Either[L, R]) Right() R {
	return e.right
}

// Unpack returns the right payload and whether this is a Right.
func (e Either[L, R]) Unpack() (R, bool) {
	return e.right, e.isRight
}

// Id returns the Either's identity, assigned at construction.
func (e Either[L, R]) Id() uuid.UUID {
	return e.id
}

// CreatedAt returns the construction time (UTC).
func (e Either[L, R]) CreatedAt() time.Time {
	return e.createdAt
}

// IfLeft runs action on the left payload; a Right is ignored.
func (e Either[L, R]) IfLeft(action func(L)) {
	if action == nil {
		panic("either: nil action")
	}
	if !e.isRight {
		action(e.left)
	}
}

// IfRight runs action on the right payload; a Left is ignored.
func (e Either[L, R]) IfRight(action func(R)) {
	if action == nil {
		panic("either: nil action")
	}
	if e.isRight {
		action(e.right)
	}
}

// JoinLeft combines two Eithers from the left perspective: a Left yields
// other, a Right keeps itself.
func (e Either[L, R]) JoinLeft(other Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return other
}

// JoinRight combines two Eithers from the right perspective: a Right
// yields other, a Left keeps itself.
func (e Either[L, R]) JoinRight(other Either[L, R]) Either[L, R] {
	if e.isRight {
		return other
	}
	return e
}

// FilterOrElse keeps a Right whose payload passes pred, demoting it to
// Left(orElse) otherwise. A Left passes through unchanged.
func (e Either[L, R]) FilterOrElse(pred func(R) bool, orElse L) Either[L, R] {
	if pred == nil {
		panic("either: nil predicate")
	}
	if !e.isRight {
		return e
	}
	if pred(e.right) {
		return e
	}
	return Left[L, R](orElse)
}

// Exists reports whether the right payload satisfies pred. A Left never
// does.
func (e Either[L, R]) Exists(pred func(R) bool) bool {
	if pred == nil {
		panic("either: nil predicate")
	}
	if !e.isRight {
		return false
	}
	return pred(e.right)
}

// Map folds a Right payload onto the Left side: a Right yields
// Left(mapper(payload)), while a Left is returned unchanged. Use FlatMap
// to transform a Right into another Right.
func (e Either[L, R]) Map(mapper func(R) L) Either[L, R] {
	if mapper == nil {
		panic("either: nil mapper")
	}
	if !e.isRight {
		return e
	}
	return Left[L, R](mapper(e.right))
}

// ForEach runs exactly one of the two actions, picked by variant.
func (e Either[L, R]) ForEach(leftAction func(L), rightAction func(R)) {
	if e.isRight {
		if rightAction == nil {
			panic("either: nil rightAction")
		}
		rightAction(e.right)
		return
	}
	if leftAction == nil {
		panic("either: nil leftAction")
	}
	leftAction(e.left)
}

// ToOpt converts a Right into a present Option and a Left into the empty
// Option, dropping the left payload.
func (e Either[L, R]) ToOpt() opt.Option[R] {
	if e.isRight {
		return opt.Of(e.right)
	}
	return opt.Empty[R]()
}

// FlatMap chains a Right through mapper, returning its Either directly.
// A Left payload is rewrapped into the new right type unchanged.
func FlatMap[L, R, T any](e Either[L, R], mapper func(R) Either[L, T]) Either[L, T] {
	if mapper == nil {
		panic("either: nil mapper")
	}
	if e.isRight {
		return mapper(e.right)
	}
	return Left[L, T](e.left)
}

// Fold collapses the Either into a single value. Exactly one of the two
// mappers runs, never both, never neither.
func Fold[L, R, U any](e Either[L, R], leftMapper func(L) U, rightMapper func(R) U) U {
	if e.isRight {
		if rightMapper == nil {
			panic("either: nil rightMapper")
		}
		return rightMapper(e.right)
	}
	if leftMapper == nil {
		panic("either: nil leftMapper")
	}
	return leftMapper(e.left)
}
