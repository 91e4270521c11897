package dtoken

import (
	"github.com/dtoken-go/dtoken/internal/digest"
	"github.com/dtoken-go/dtoken/internal/pint16"
	"github.com/dtoken-go/dtoken/internal/rscode"
)

// Hash computes the Token for payload:
//
//  1. mixed_digest = SHA-256(payload) XOR BLAKE3-256(payload)
//  2. packed_length = pack(len(payload))
//  3. frame = mixed_digest ‖ packed_length
//  4. parity = ReedSolomon.GenerateParity(frame)
//  5. Token = frame ‖ parity
//
// Hash is a pure function of payload's bytes; it never blocks and
// performs no I/O.
func Hash(payload []byte) (Token, error) {
	mixed := digest.Combine(payload)
	packed := pint16.Pack(uint64(len(payload)))

	var frame [FrameSize]byte
	copy(frame[:DigestSize], mixed[:])
	frame[DigestSize] = packed[0]
	frame[DigestSize+1] = packed[1]

	parity, err := rscode.GenerateParity(frame)
	if err != nil {
		return Token{}, &ParityGenerationError{Err: err}
	}

	var raw [BinSize]byte
	copy(raw[:FrameSize], frame[:])
	copy(raw[FrameSize:], parity[:])

	return fromRaw(raw), nil
}
