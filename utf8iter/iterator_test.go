package utf8iter

import "testing"

func TestASCIIWalk(t *testing.T) {
	it := New([]byte("ab"))
	if it.IsEOS() {
		t.Fatal("IsEOS true at start")
	}
	if cu := it.ReadNextAndIncr(); cu != 'a' {
		t.Errorf("first code unit = %d, want 'a'", cu)
	}
	if cu := it.ReadNextAndIncr(); cu != 'b' {
		t.Errorf("second code unit = %d, want 'b'", cu)
	}
	if !it.IsEOS() {
		t.Error("IsEOS false at end of buffer")
	}
	if got := it.ReadNext(); got != 0 {
		t.Errorf("ReadNext at EOS = %d, want 0", got)
	}
}

func TestSurrogatePairForAstralCharacter(t *testing.T) {
	// U+1F600 GRINNING FACE, encoded as 4 UTF-8 bytes.
	it := New([]byte("\xF0\x9F\x98\x80"))
	high := it.ReadNext()
	if high != 0xD83D {
		t.Fatalf("high surrogate = %#x, want 0xD83D", high)
	}
	if it.IsMidSurrogatePair() {
		t.Error("mid-pair true before incr past the high half")
	}
	it.Incr()
	if !it.IsMidSurrogatePair() {
		t.Error("mid-pair false after incr past the high half")
	}
	low := it.ReadNext()
	if low != 0xDE00 {
		t.Fatalf("low surrogate = %#x, want 0xDE00", low)
	}
	off := it.GetOffset()
	it.Incr()
	if it.IsMidSurrogatePair() {
		t.Error("mid-pair true after consuming the low half")
	}
	if it.GetOffset() != off {
		t.Errorf("offset moved on the low-half incr: %d -> %d", off, it.GetOffset())
	}
	if !it.IsEOS() {
		t.Error("not at EOS after consuming the whole 4-byte sequence")
	}
}

func TestDecrUndoesIncrAcrossSurrogatePair(t *testing.T) {
	it := New([]byte("\xF0\x9F\x98\x80x"))
	it.Incr() // past high half
	it.Incr() // past low half, now at 'x'
	if it.ReadNext() != 'x' {
		t.Fatal("expected to be positioned at 'x'")
	}
	it.Decr() // back into mid-pair
	if !it.IsMidSurrogatePair() {
		t.Error("decr from after the pair did not re-enter mid-pair state")
	}
	if it.ReadNext() != 0xDE00 {
		t.Error("decr into mid-pair did not restore the low surrogate")
	}
	it.Decr() // back before the whole sequence
	if it.IsMidSurrogatePair() || it.GetOffset() != 0 {
		t.Error("decr out of mid-pair did not return to the sequence start")
	}
	if it.ReadNext() != 0xD83D {
		t.Error("back at sequence start, expected the high surrogate again")
	}
}

func TestSetOffsetClearsMidPair(t *testing.T) {
	it := New([]byte("\xF0\x9F\x98\x80"))
	it.Incr()
	if !it.IsMidSurrogatePair() {
		t.Fatal("setup: expected mid-pair")
	}
	it.SetOffset(0)
	if it.IsMidSurrogatePair() {
		t.Error("SetOffset did not clear mid-pair state")
	}
}

func TestAdvance(t *testing.T) {
	it := New([]byte("hello"))
	it.Advance(3)
	if it.ReadNext() != 'l' {
		t.Errorf("after Advance(3), ReadNext = %c, want 'l'", it.ReadNext())
	}
}
