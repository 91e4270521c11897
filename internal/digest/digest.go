// Package digest computes the mixed digest that seeds a Token: the
// byte-wise XOR of SHA-256 and BLAKE3-256 over the same payload.
package digest

import (
	"crypto/sha256"

	"lukechampine.com/blake3"
)

// Size is the length in bytes of a mixed digest.
const Size = 32

// Combine returns SHA-256(payload) XOR BLAKE3-256(payload).
//
// Two independently-designed digests are combined so the result is at
// least as collision-resistant as the stronger of the two under standard
// assumptions. Combine is a pure function of payload.
func Combine(payload []byte) [Size]byte {
	sha := sha256.Sum256(payload)
	bla := blake3.Sum256(payload)

	var mixed [Size]byte
	for i := range mixed {
		mixed[i] = sha[i] ^ bla[i]
	}
	return mixed
}
