package literal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInternStringIsIdempotent(t *testing.T) {
	tab := New()
	id1 := tab.CreateFromString([]byte("hello"))
	id2 := tab.CreateFromString([]byte("hello"))
	if id1 != id2 {
		t.Errorf("CreateFromString not idempotent: %d != %d", id1, id2)
	}
	if got := tab.String(id1); got != "hello" {
		t.Errorf("String(id1) = %q, want %q", got, "hello")
	}
}

func TestInternNumberIsIdempotentAndBitwiseExact(t *testing.T) {
	tab := New()
	id1 := tab.CreateFromNumber(3.5)
	id2 := tab.CreateFromNumber(3.5)
	if id1 != id2 {
		t.Errorf("CreateFromNumber not idempotent: %d != %d", id1, id2)
	}

	posZeroID := tab.CreateFromNumber(0.0)
	negZeroID := tab.CreateFromNumber(negativeZero())
	if posZeroID == negZeroID {
		t.Error("+0.0 and -0.0 interned to the same id, want distinct (bitwise comparison)")
	}
}

func negativeZero() float64 {
	z := 0.0
	return -z
}

func TestFindByStringAcrossVariants(t *testing.T) {
	tab := New()
	id, ok := tab.FindByString([]byte("length"))
	if !ok {
		t.Fatal("expected \"length\" to be preloaded as a magic string")
	}
	lit := tab.Get(id)
	if lit.Kind != KindMagicString {
		t.Errorf("Kind = %v, want KindMagicString", lit.Kind)
	}

	// Interning the same spelling via CreateFromString must find the
	// existing magic-string entry rather than creating a duplicate.
	id2 := tab.CreateFromString([]byte("length"))
	if diff := cmp.Diff(id, id2); diff != "" {
		t.Errorf("CreateFromString did not find the magic-string entry (-want +got):\n%s", diff)
	}
}

func TestFindByStringMissing(t *testing.T) {
	tab := New()
	_, ok := tab.FindByString([]byte("not interned yet"))
	if ok {
		t.Error("FindByString found an entry that was never interned")
	}
}

func TestGetPanicsOnUnknownID(t *testing.T) {
	tab := New()
	defer func() {
		if recover() == nil {
			t.Error("Get did not panic on an out-of-range id")
		}
	}()
	tab.Get(ID(60000))
}
