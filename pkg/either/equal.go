package either

// Equal reports whether a and b are on the same side and their active
// payloads are equal under ==. For comparable payloads this is the same as
// a == b.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}

// Comparer compares Either values whose payloads are not comparable with ==.
// Equal is an equivalence relation as long as Left and Right are.
type Comparer[L, R any] struct {
	Left  func(a, b L) bool
	Right func(a, b R) bool
}

func (c Comparer[L, R]) Equal(a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return c.Right(a.right, b.right)
	}
	return c.Left(a.left, b.left)
}
