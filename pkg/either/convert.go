package either

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrAmbiguous     = errors.New("value converts to both sides")
	ErrUnconvertible = errors.New("value converts to neither side")
)

// Of wraps v as a Left if it is an L, or as a Right if it is an R.
//
// When v is an L and an R at once, for example because L and R are the same
// type or one of them is an interface v satisfies, Of returns ErrAmbiguous
// instead of picking a side; use Left or Right explicitly. An untyped nil goes
// to the only side whose type can hold nil.
func Of[L, R any](v any) (Either[L, R], error) {
	if v == nil {
		return ofNil[L, R]()
	}

	l, isLeft := v.(L)
	r, isRight := v.(R)

	switch {
	case isLeft && isRight:
		return Either[L, R]{}, fmt.Errorf("%w: %T", ErrAmbiguous, v)
	case isLeft:
		return Left[L, R](l), nil
	case isRight:
		return Right[L, R](r), nil
	default:
		return Either[L, R]{}, fmt.Errorf("%w: %T", ErrUnconvertible, v)
	}
}

// MustOf is like Of but panics if v cannot be converted.
func MustOf[L, R any](v any) Either[L, R] {
	e, err := Of[L, R](v)
	if err != nil {
		panic(err)
	}
	return e
}

func ofNil[L, R any]() (Either[L, R], error) {
	leftNilable := nilable(reflect.TypeFor[L]())
	rightNilable := nilable(reflect.TypeFor[R]())

	switch {
	case leftNilable && rightNilable:
		return Either[L, R]{}, fmt.Errorf("%w: untyped nil", ErrAmbiguous)
	case leftNilable:
		var zero L
		return Left[L, R](zero), nil
	case rightNilable:
		var zero R
		return Right[L, R](zero), nil
	default:
		return Either[L, R]{}, fmt.Errorf("%w: untyped nil", ErrUnconvertible)
	}
}
