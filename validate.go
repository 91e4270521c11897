package dtoken

import (
	"github.com/dtoken-go/dtoken/internal/btoken"
	"github.com/dtoken-go/dtoken/internal/rscode"
)

// Validate accepts a binary input (41-48 bytes, a possibly-short
// compact prefix) or a textual input (55-64 ASCII bytes, base64), and
// recovers the canonical Token it encodes. Any other length fails
// with *InvalidLengthError.
//
// A short input is right-padded with PaddingByte up to BinSize before
// Reed-Solomon correction runs; a too-corrupted input fails with
// *DecodeError wrapping the codec's diagnostic.
func Validate(input []byte) (Token, error) {
	var buf [BinSize]byte

	switch {
	case len(input) >= minRecoverableBin && len(input) <= BinSize:
		copyPadded(buf[:], input)

	case len(input) >= minRecoverableText && len(input) <= TextSize:
		decoded, err := btoken.Decode(string(input))
		if err != nil || len(decoded) < minRecoverableBin || len(decoded) > BinSize {
			return Token{}, &InvalidLengthError{Len: len(input)}
		}
		copyPadded(buf[:], decoded)

	default:
		return Token{}, &InvalidLengthError{Len: len(input)}
	}

	var frame [FrameSize]byte
	var parity [ParitySize]byte
	copy(frame[:], buf[:FrameSize])
	copy(parity[:], buf[FrameSize:])

	if err := rscode.CorrectDetached(&parity, &frame); err != nil {
		return Token{}, &DecodeError{Err: err}
	}

	var raw [BinSize]byte
	copy(raw[:FrameSize], frame[:])
	copy(raw[FrameSize:], parity[:])

	return fromRaw(raw), nil
}

// ValidateString is Validate for a string input, avoiding a caller-side
// byte conversion for the common textual case.
func ValidateString(input string) (Token, error) {
	return Validate([]byte(input))
}

// copyPadded copies src into dst and right-pads the remainder of dst
// with PaddingByte. dst must be at least len(src) long.
func copyPadded(dst, src []byte) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = PaddingByte
	}
}

// DecodeParts decomposes a binary or textual Token input into its
// three canonical fields without running Reed-Solomon correction.
// Input of any length other than BinSize is base64-decoded first. It
// fails with *InvalidLengthError when the binary form is shorter than
// BinSize (for textual input: shorter than TextSize) — unlike Validate, DecodeParts does not accept
// short/compact inputs, since there is nothing to error-correct here.
func DecodeParts(input []byte) (mixedDigest [DigestSize]byte, parity [ParitySize]byte, length PackedLength, err error) {
	bin := input
	if len(input) != BinSize {
		decoded, decErr := btoken.Decode(string(input))
		if decErr != nil {
			return mixedDigest, parity, length, &InvalidLengthError{Len: len(input)}
		}
		bin = decoded
	}

	if len(bin) < BinSize {
		return mixedDigest, parity, length, &InvalidLengthError{Len: len(input)}
	}

	copy(mixedDigest[:], bin[:DigestSize])
	length = PackedLength{bin[DigestSize], bin[DigestSize+1]}
	copy(parity[:], bin[FrameSize:BinSize])
	return mixedDigest, parity, length, nil
}
