package dtoken

import (
	"crypto/sha256"
	"testing"
)

func mustHash(t *testing.T, payload []byte) Token {
	t.Helper()
	tok, err := Hash(payload)
	if err != nil {
		t.Fatalf("Hash(%q): %v", payload, err)
	}
	return tok
}

func TestTokenEqualReflexive(t *testing.T) {
	tok := mustHash(t, []byte("equal me"))
	if !tok.Equal(tok) {
		t.Fatalf("token not equal to itself")
	}
}

func TestTokenEqualDistinguishesPayloads(t *testing.T) {
	a := mustHash(t, []byte("data one"))
	b := mustHash(t, []byte("data two"))
	if a.Equal(b) {
		t.Fatalf("distinct payloads hashed equal")
	}
}

func TestTokenCompareTotalOrder(t *testing.T) {
	a := mustHash(t, []byte("alpha"))
	b := mustHash(t, []byte("bravo"))

	if a.Compare(a) != 0 {
		t.Fatalf("Compare(a, a) = %d, want 0", a.Compare(a))
	}
	if a.Compare(b) == 0 {
		t.Fatalf("distinct tokens compared equal")
	}
	if a.Compare(b) != -b.Compare(a) {
		t.Fatalf("Compare is not antisymmetric: a.Compare(b)=%d b.Compare(a)=%d", a.Compare(b), b.Compare(a))
	}
	if a.Less(b) == b.Less(a) {
		t.Fatalf("Less is not a strict order between distinct tokens")
	}
}

func TestTokenAsMapKey(t *testing.T) {
	a := mustHash(t, []byte("map key one"))
	b := mustHash(t, []byte("map key two"))

	m := map[Token]int{a: 1, b: 2}
	if m[a] != 1 || m[b] != 2 {
		t.Fatalf("token map lookup failed: got %v", m)
	}

	again, err := Hash([]byte("map key one"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if _, ok := m[again]; !ok {
		t.Fatalf("re-derived token did not find its map entry")
	}
}

func TestTokenWriteHashConsistentWithEqual(t *testing.T) {
	a := mustHash(t, []byte("hashable"))
	b, err := Hash([]byte("hashable"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	ha := sha256.New()
	hb := sha256.New()
	a.WriteHash(ha)
	b.WriteHash(hb)

	if string(ha.Sum(nil)) != string(hb.Sum(nil)) {
		t.Fatalf("equal tokens produced different WriteHash output")
	}
}

func TestTokenWriteHashDistinguishesTokens(t *testing.T) {
	a := mustHash(t, []byte("left"))
	b := mustHash(t, []byte("right"))

	ha := sha256.New()
	hb := sha256.New()
	a.WriteHash(ha)
	b.WriteHash(hb)

	if string(ha.Sum(nil)) == string(hb.Sum(nil)) {
		t.Fatalf("distinct tokens produced identical WriteHash output")
	}
}

func TestTokenAccessorsAgreeWithBinary(t *testing.T) {
	tok := mustHash(t, []byte("accessors"))
	bin := tok.Binary()

	digest := tok.Digest()
	if string(digest[:]) != string(bin[:DigestSize]) {
		t.Fatalf("Digest() disagrees with Binary() prefix")
	}

	parity := tok.Parity()
	if string(parity[:]) != string(bin[FrameSize:BinSize]) {
		t.Fatalf("Parity() disagrees with Binary() suffix")
	}

	compact := tok.Compact()
	if string(compact[:]) != string(bin[:CompactSize]) {
		t.Fatalf("Compact() disagrees with Binary() prefix")
	}

	if string(tok.Bytes()) != string(bin[:]) {
		t.Fatalf("Bytes() disagrees with Binary()")
	}
}

func TestTokenTextLength(t *testing.T) {
	tok := mustHash(t, []byte("text length"))
	if len(tok.Text()) != TextSize {
		t.Fatalf("Text() length = %d, want %d", len(tok.Text()), TextSize)
	}
	if tok.String() != tok.Text() {
		t.Fatalf("String() and Text() disagree")
	}
}
