package either

type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding v on the left side. v may be absent (nil).
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{
		left:    v,
		isRight: false,
	}
}

// Right returns an Either holding v on the right side. v may be absent (nil).
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{
		right:   v,
		isRight: true,
	}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left payload and true, or the zero L and false
// when e is a Right.
func (e Either[L, R]) LeftValue() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// RightValue returns the right payload and true, or the zero R and false
// when e is a Left.
func (e Either[L, R]) RightValue() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}
