// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import "golang.org/x/xerrors"

// ErrorKind classifies a cache error so callers can branch on errors.As
// instead of string-matching.
type ErrorKind int

const (
	// KindCapacity: a line's rounded size exceeds the set byte budget.
	KindCapacity ErrorKind = iota
	// KindEmptySet: a policy's Evict was called with nothing to evict.
	KindEmptySet
	// KindHistoryBufferFull: a CAMP history insertion was dropped.
	KindHistoryBufferFull
	// KindInternalInvariant: eviction ran to completion with room still
	// short -- a replacement-policy bug.
	KindInternalInvariant
)

// CacheError is any error this package returns; Kind lets callers recover
// the error category without parsing the message.
type CacheError interface {
	error
	Kind() ErrorKind
}

type cacheError struct {
	kind  ErrorKind
	msg   string
	cause error
}

func (e *cacheError) Error() string   { return e.msg }
func (e *cacheError) Kind() ErrorKind { return e.kind }
func (e *cacheError) Unwrap() error   { return e.cause }

// Sentinel errors for cache set and engine operations.
var (
	// ErrCapacity is returned by Cache.miss when a single line's rounded
	// compressed size exceeds the set byte-budget B -- the cache geometry
	// cannot hold it no matter how much is evicted. Fatal; under BDI's
	// fixed geometry (max CompSize <= 32 = B/2) it cannot occur, but the
	// check stays live as a guard against a misbehaving Codec.
	ErrCapacity CacheError = &cacheError{kind: KindCapacity, msg: "cache: line rounded size exceeds set byte budget"}
	// ErrEmptySet is returned by a policy's Evict when called on a set with
	// no lines to evict. Non-fatal: callers log and return without mutation.
	ErrEmptySet CacheError = &cacheError{kind: KindEmptySet, msg: "cache: no lines to evict in an empty set"}
	// ErrHistoryBufferFull names a dropped CAMP history insertion. No path
	// in this package returns it: Set.pushHistory is a ring that wraps at
	// historySize and never rejects an insertion.
	ErrHistoryBufferFull CacheError = &cacheError{kind: KindHistoryBufferFull, msg: "cache: CAMP history buffer insertion dropped"}
)

// errInternalInvariant reports that eviction ran to completion but the set
// still lacks room for the incoming line -- a replacement-policy bug. This
// is the one fatal, should-never-happen path, so its cause is built with
// xerrors to carry a frame for where the invariant broke.
func errInternalInvariant(need, remaining int) error {
	cause := xerrors.Errorf("cache: internal invariant violated: need %d bytes, only %d remain after eviction", need, remaining)
	return &cacheError{kind: KindInternalInvariant, msg: cause.Error(), cause: cause}
}
