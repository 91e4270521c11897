// Package dtoken implements a content-addressing digest token: a
// fixed-size, self-describing, error-correcting value computed over an
// arbitrary byte payload.
//
// A Token combines SHA-256 and BLAKE3-256 of the payload by XOR,
// embeds the payload's byte length, and protects the result with
// Reed-Solomon parity. It has two interchangeable forms — a 48-byte
// binary form and a 64-character textual (base64) form — and either
// form, even partially corrupted within correction capacity, recovers
// the canonical Token via Validate.
//
// The package is purely computational: every operation is synchronous,
// allocates no shared state, and is safe to call concurrently from any
// number of goroutines, since a Token is an immutable value.
package dtoken

import "github.com/dtoken-go/dtoken/internal/rscode"

// Size constants for a Token's binary layout. See the package doc for
// the field meanings.
const (
	DigestSize = 32
	FrameSize  = rscode.DataSize // 34: DigestSize + 2-byte packed length
	ParitySize = rscode.ParitySize
	BinSize    = rscode.TotalSize // 48
	TextSize   = 64
	CompactSize = 42

	// rsCorrectionCapacity is floor(ParitySize/2): the number of
	// arbitrary-position byte errors the codec guarantees it can
	// correct, and also the number of trailing bytes a short/compact
	// input may omit.
	rsCorrectionCapacity = 7

	// minRecoverableBin is the shortest binary prefix Validate accepts:
	// a prefix missing no more bytes than the codec can treat as
	// erasures.
	minRecoverableBin = BinSize - rsCorrectionCapacity // 41

	// minRecoverableText is the shortest textual prefix Validate
	// accepts, sized so its base64 decoding is at least
	// minRecoverableBin bytes.
	minRecoverableText = 55

	// PaddingByte right-pads a short input up to BinSize before Reed-
	// Solomon correction. 0xF4 was picked, not 0x00, because an
	// all-zero short input would otherwise correct to the canonical
	// token of the empty string (or any other common all-zero value),
	// making truncation look like a clean validation. Changing this
	// byte changes which short inputs recover, so it must match
	// exactly between producers and consumers.
	PaddingByte = 0xF4
)
