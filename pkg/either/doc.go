// Package either provides Either[L, R], an immutable value that holds exactly
// one of two payloads: a Left of type L or a Right of type R.
//
// Highlights:
// - Left/Right: construct an Either on the given side
// - Of/MustOf: wrap a bare value on whichever side its type belongs to
// - IsLeft/IsRight: query the discriminant
// - Match/Handlers: reduce to a value by running exactly one handler
// - Tee: run a side effect for the active side
// - Equal/Hash: structural equality and hashing for comparable payloads
// - Comparer/Hasher: the same for payloads compared by caller-supplied functions
//
// The zero value is a Left holding the zero L.
package either
