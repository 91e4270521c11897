// Package btoken implements the repo-specific, unpadded base64 variant
// used for a Token's textual form. It differs from stdlib's StdEncoding
// and URLEncoding only in its two non-alphanumeric characters, one of
// which is '~'.
package btoken

import "encoding/base64"

// Alphabet is the 64-character table this variant encodes with. The
// last two characters ('~' and '_') replace standard base64's '+' and
// '/' (and URL-safe's '-' and '_') so the textual form can be embedded
// in contexts — URLs, filenames, shell arguments — that treat '+' and
// '/' specially.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789~_"

var encoding = base64.NewEncoding(Alphabet).WithPadding(base64.NoPadding)

// Encode returns the unpadded base64 encoding of data using Alphabet.
func Encode(data []byte) string {
	return encoding.EncodeToString(data)
}

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int {
	return encoding.EncodedLen(n)
}

// Decode decodes an unpadded base64 string encoded with Alphabet.
func Decode(s string) ([]byte, error) {
	return encoding.DecodeString(s)
}

// DecodedLen returns an upper bound on the decoded length of an
// n-character string.
func DecodedLen(n int) int {
	return encoding.DecodedLen(n)
}
