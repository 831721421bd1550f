package either

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MarshalLogObject lets an Either be logged with zap.Object. It writes the
// active side and its payload only.
func (e Either[L, R]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e.isRight {
		enc.AddString("side", "right")
		return enc.AddReflected("value", e.right)
	}
	enc.AddString("side", "left")
	return enc.AddReflected("value", e.left)
}
