package either

// Match runs onRight with the right payload if e is a Right, otherwise onLeft
// with the left payload, and returns its result. Exactly one handler runs.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Handlers bundles both sides of a Match so the same case analysis can be
// applied to many values.
type Handlers[L, R, T any] struct {
	OnLeft  func(l L) T
	OnRight func(r R) T
}

func (h Handlers[L, R, T]) Match(e Either[L, R]) T {
	return Match(e, h.OnLeft, h.OnRight)
}

// Tee calls the handler for the active side and returns e unchanged.
// A nil handler is skipped.
func (e Either[L, R]) Tee(onLeft func(l L), onRight func(r R)) Either[L, R] {
	if e.isRight {
		if onRight != nil {
			onRight(e.right)
		}
		return e
	}

	if onLeft != nil {
		onLeft(e.left)
	}
	return e
}
