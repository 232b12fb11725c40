// Package literal implements the engine's literal table: a
// process-local intern pool mapping byte-exact strings and
// bitwise-exact float64 values to small stable 16-bit ids that tokens
// carry inline instead of copying literal data around.
package literal

import (
	"fmt"
	"math"
)

// Kind distinguishes the variants a Literal can hold.
type Kind byte

const (
	KindInternedString Kind = iota
	KindMagicString
	KindMagicStringExt
	KindNumber
)

// ID is a stable, compressed handle into a Table. Two interns of an
// equal value always return the same ID.
type ID uint16

// maxID is the largest representable ID; exhausting the space is a
// fatal condition the engine cannot recover from, matching the
// spec's 16-bit id budget.
const maxID = ID(^uint16(0))

// Literal is one entry in the table. Only the fields relevant to its
// Kind are meaningful: Bytes for the three string variants, Number
// for KindNumber.
type Literal struct {
	Kind   Kind
	Bytes  []byte
	Number float64
}

// Table is the process-local intern pool. The zero value is not
// usable; construct with New.
type Table struct {
	entries []Literal
	byBytes map[string]ID
	byNum   map[uint64]ID // keyed by math.Float64bits for bitwise equality
	magic   map[string]ID // magic-string spellings; lookups go through byBytes, which also holds them
}

// New constructs a Table preloaded with the built-in magic strings.
func New() *Table {
	t := &Table{
		byBytes: make(map[string]ID),
		byNum:   make(map[uint64]ID),
		magic:   make(map[string]ID),
	}
	for _, s := range magicStrings {
		t.addEntry(Literal{Kind: KindMagicString, Bytes: []byte(s)})
	}
	for _, s := range magicStringsExt {
		t.addEntry(Literal{Kind: KindMagicStringExt, Bytes: []byte(s)})
	}
	return t
}

func (t *Table) addEntry(lit Literal) ID {
	if len(t.entries) == 0 {
		// Reserve id 0 so that a zero-valued token immediate is
		// distinguishable from "never interned" in callers that use
		// zero as a sentinel.
		t.entries = append(t.entries, Literal{})
	}
	if ID(len(t.entries)) == maxID {
		panic("literal: id space exhausted")
	}
	id := ID(len(t.entries))
	t.entries = append(t.entries, lit)
	switch lit.Kind {
	case KindInternedString, KindMagicString, KindMagicStringExt:
		t.byBytes[string(lit.Bytes)] = id
		if lit.Kind != KindInternedString {
			t.magic[string(lit.Bytes)] = id
		}
	case KindNumber:
		t.byNum[math.Float64bits(lit.Number)] = id
	}
	return id
}

// FindByString searches for an existing literal with this exact byte
// content, across all three string variants, and reports whether one
// was found.
func (t *Table) FindByString(s []byte) (ID, bool) {
	id, ok := t.byBytes[string(s)]
	return id, ok
}

// FindByNumber searches for an existing literal with this exact (by
// bit pattern) float64 value.
func (t *Table) FindByNumber(v float64) (ID, bool) {
	id, ok := t.byNum[math.Float64bits(v)]
	return id, ok
}

// CreateFromString interns s, returning the existing id if s was
// already interned under any string variant, or creating a new
// InternedString entry otherwise. Idempotent: repeated calls with an
// equal s return the same id.
func (t *Table) CreateFromString(s []byte) ID {
	if id, ok := t.FindByString(s); ok {
		return id
	}
	return t.addEntry(Literal{Kind: KindInternedString, Bytes: append([]byte(nil), s...)})
}

// CreateFromNumber interns v, returning the existing id if an equal
// (by bit pattern) value was already interned, or creating a new
// Number entry otherwise. The lexer never interns NaN, so bitwise
// equality is sufficient and no NaN-is-distinct handling is needed.
func (t *Table) CreateFromNumber(v float64) ID {
	if id, ok := t.FindByNumber(v); ok {
		return id
	}
	return t.addEntry(Literal{Kind: KindNumber, Number: v})
}

// Get returns the literal stored under id. It panics if id was never
// produced by this table — a caller bug, not a recoverable condition.
func (t *Table) Get(id ID) Literal {
	if int(id) >= len(t.entries) {
		panic(fmt.Sprintf("literal: id %d out of range", id))
	}
	return t.entries[id]
}

// String renders a string-variant literal's content for diagnostics.
// It panics if id does not hold a string variant.
func (t *Table) String(id ID) string {
	lit := t.Get(id)
	switch lit.Kind {
	case KindInternedString, KindMagicString, KindMagicStringExt:
		return string(lit.Bytes)
	default:
		panic("literal: String called on a non-string literal")
	}
}
