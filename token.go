package dtoken

import (
	"bytes"
	"hash"

	"github.com/dtoken-go/dtoken/internal/btoken"
	"github.com/dtoken-go/dtoken/internal/pint16"
)

// Token is the 48-byte canonical digest token. It is value-typed,
// freely copyable, comparable with ==, and safe to use as a map key:
// its only field is a fixed-size byte array.
type Token struct {
	raw [BinSize]byte
}

// PackedLength is the 2-byte non-uniform encoding of a payload's byte
// length embedded in a Token. Use ToInt to recover a native integer.
type PackedLength pint16.Packed

// ToInt converts p to its decoded integer value. For payload lengths
// beyond pint16.MaxExact that aren't a multiple of a large enough
// power of two, this value may be an approximation of the original
// length (see internal/pint16's doc comment).
func (p PackedLength) ToInt() int {
	return pint16.Packed(p).ToInt()
}

// Digest returns the Token's 32-byte mixed digest: SHA-256(payload)
// XOR BLAKE3-256(payload).
func (t Token) Digest() [DigestSize]byte {
	var d [DigestSize]byte
	copy(d[:], t.raw[:DigestSize])
	return d
}

// Length returns the Token's packed payload length.
func (t Token) Length() PackedLength {
	return PackedLength{t.raw[DigestSize], t.raw[DigestSize+1]}
}

// Parity returns the Token's 14 Reed-Solomon parity bytes.
func (t Token) Parity() [ParitySize]byte {
	var p [ParitySize]byte
	copy(p[:], t.raw[FrameSize:BinSize])
	return p
}

// Compact returns the Token's first 42 bytes: the full frame plus the
// first 8 parity bytes. Validate can rebuild the full canonical Token
// from this prefix alone.
func (t Token) Compact() [CompactSize]byte {
	var c [CompactSize]byte
	copy(c[:], t.raw[:CompactSize])
	return c
}

// Binary returns the Token's canonical 48-byte binary form.
func (t Token) Binary() [BinSize]byte {
	return t.raw
}

// Bytes returns the Token's canonical binary form as a freshly
// allocated slice.
func (t Token) Bytes() []byte {
	b := make([]byte, BinSize)
	copy(b, t.raw[:])
	return b
}

// Text returns the Token's 64-character base64 textual form.
func (t Token) Text() string {
	return btoken.Encode(t.raw[:])
}

// String implements fmt.Stringer by returning Text().
func (t Token) String() string {
	return t.Text()
}

// Equal reports whether t and other decompose to the same
// (mixed_digest, parity, packed_length) triple. For two canonical
// Tokens this is equivalent to full binary equality; it is specified
// field-wise so equality remains meaningful for a Token built from
// non-canonical bytes via unexported construction paths.
func (t Token) Equal(other Token) bool {
	return t.raw == other.raw
}

// Compare returns -1, 0, or 1 according to whether t's mixed digest is
// lexicographically less than, equal to, or greater than other's.
// This is a total order over Tokens and is consistent with Equal on
// canonical Tokens.
func (t Token) Compare(other Token) int {
	return bytes.Compare(t.raw[:DigestSize], other.raw[:DigestSize])
}

// Less reports whether t orders before other under Compare.
func (t Token) Less(other Token) bool {
	return t.Compare(other) < 0
}

// WriteHash feeds t's mixed digest, parity, and raw packed-length
// bytes into h, in that order. Two equal Tokens always produce
// identical writes, so h's accumulated state (and anything derived
// from it, such as a hash-map bucket) is consistent with Equal.
func (t Token) WriteHash(h hash.Hash) {
	h.Write(t.raw[:DigestSize])
	h.Write(t.raw[FrameSize:BinSize])
	h.Write(t.raw[DigestSize : DigestSize+2])
}

func fromRaw(raw [BinSize]byte) Token {
	return Token{raw: raw}
}
