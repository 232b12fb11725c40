package token

import (
	"fmt"
	"sort"
)

// Locus is a byte offset into a source buffer. It is always on a
// UTF-8 character boundary unless it refers to a point between the
// two halves of a surrogate pair produced by the UTF-8 iterator.
type Locus uint32

// NoLocus is the zero value, used where no position is available.
const NoLocus Locus = 0

// Position is a human-readable, zero-based line and column derived
// from a Locus by counting line-terminator bytes.
type Position struct {
	Line   int // zero-based line number
	Column int // zero-based byte column within the line
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineTable tracks the byte offsets of line starts within a single
// source buffer, so that a Locus can be mapped to a (line, column)
// pair without rescanning the buffer from the start every time.
//
// This plays the role the teacher's token.File.lines slice plays for
// a whole FileSet; here it is scoped to the single buffer a Lexer
// owns for its lifetime, since the engine never lexes more than one
// script at a time (see lexer.Lexer).
type LineTable struct {
	lines []int // byte offset of the first byte of each line; lines[0] == 0
}

// NewLineTable creates a table with just the first line registered.
func NewLineTable() *LineTable {
	return &LineTable{lines: []int{0}}
}

// AddLine records the offset of a new line start. The offset must be
// larger than the previously recorded line's offset, or it is
// ignored (this mirrors the teacher's defensive AddLine behaviour,
// which tolerates being called out of order during error recovery).
func (t *LineTable) AddLine(offset int) {
	n := len(t.lines)
	if n == 0 || t.lines[n-1] < offset {
		t.lines = append(t.lines, offset)
	}
}

// Position converts a byte offset into a zero-based line and column
// by binary-searching the recorded line starts.
func (t *LineTable) Position(offset int) Position {
	// index of the last line start <= offset
	i := sort.Search(len(t.lines), func(i int) bool { return t.lines[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return Position{Line: i, Column: offset - t.lines[i]}
}
