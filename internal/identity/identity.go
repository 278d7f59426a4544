// Package identity derives stable, non-pointer-leaking display tokens for
// bare class instances (an instance without a zero-argument __str__ still
// needs *some* printable identity).
package identity

import (
	"encoding/hex"
	"sync/atomic"

	"golang.org/x/crypto/blake2b"
)

// counter is the monotonically increasing allocation sequence backing each
// token; it never resets within a process, so no two instances share a
// sequence number. The token keeps only 4 bytes of the hash, so two
// distinct sequence numbers can, rarely, yield the same token.
var counter uint64

// Token returns an 8-hex-character identity token for allocation sequence
// number n, derived via BLAKE2b rather than exposing the sequence number
// itself, so scripts can't accidentally depend on allocation order.
func Token(n uint64) string {
	var seq [8]byte
	for i := 0; i < 8; i++ {
		seq[i] = byte(n >> (8 * i))
	}
	sum := blake2b.Sum256(seq[:])
	return hex.EncodeToString(sum[:4])
}

// Next allocates the next sequence number and returns its token in one
// step, for use at ClassInstance construction time.
func Next() string {
	n := atomic.AddUint64(&counter, 1)
	return Token(n)
}
