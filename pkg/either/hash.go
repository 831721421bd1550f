package either

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

const (
	leftTag  byte = 'L'
	rightTag byte = 'R'

	// absentHash is the payload hash of a nil payload.
	absentHash uint64 = 0
)

// seed is fixed for the lifetime of the process, so hashes are comparable
// within one process only.
var seed = maphash.MakeSeed()

// Hash returns a hash of e consistent with Equal: equal values hash equal.
// It panics if an interface-typed payload holds a value that is not
// comparable, exactly as == would.
func Hash[L, R comparable](e Either[L, R]) uint64 {
	if e.isRight {
		return combine(rightTag, payloadHash(e.right))
	}
	return combine(leftTag, payloadHash(e.left))
}

// Hasher hashes Either values with caller-supplied payload hashes. It is
// consistent with a Comparer whose functions agree with Left and Right.
type Hasher[L, R any] struct {
	Left  func(l L) uint64
	Right func(r R) uint64
}

func (h Hasher[L, R]) Hash(e Either[L, R]) uint64 {
	if e.isRight {
		return combine(rightTag, h.Right(e.right))
	}
	return combine(leftTag, h.Left(e.left))
}

func payloadHash[T comparable](v T) uint64 {
	if isAbsent(v) {
		return absentHash
	}
	return maphash.Comparable(seed, v)
}

func combine(tag byte, payload uint64) uint64 {
	var buf [9]byte
	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:], payload)
	return xxhash.Sum64(buf[:])
}
