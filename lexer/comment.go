package lexer

import (
	"github.com/minivm/emberjs/token"
	"github.com/minivm/emberjs/unicode"
)

// consumeLineTerminator advances past a single line terminator,
// folding a CR+LF pair into one step, and records the new line's
// start offset for LocusToLineAndColumn.
func (l *Lexer) consumeLineTerminator() {
	cu := l.iter.ReadNext()
	l.iter.Incr()
	if cu == carriageReturn && !l.iter.IsEOS() && l.iter.ReadNext() == lineFeed {
		l.iter.Incr()
	}
	l.lines.AddLine(l.iter.GetOffset())
}

// consumeLineComment skips a "//" comment up to (but not including)
// the next line terminator or end of stream. It is never a token;
// the driver restarts its dispatch loop afterward.
func (l *Lexer) consumeLineComment() {
	l.iter.Incr() // first '/'
	l.iter.Incr() // second '/'
	for !l.iter.IsEOS() && !unicode.IsLineTerminator(rune(l.iter.ReadNext())) {
		l.iter.Incr()
	}
}

// consumeBlockComment skips a "/* ... */" comment. It reports
// whether the body contained at least one line terminator, in which
// case the driver emits a synthetic Newline token in its place.
func (l *Lexer) consumeBlockComment(loc token.Locus) (hadNewline bool, err error) {
	l.iter.Incr() // '/'
	l.iter.Incr() // '*'
	for {
		if l.iter.IsEOS() {
			return hadNewline, l.fatalf(loc, "unterminated block comment")
		}
		cu := l.iter.ReadNext()
		if unicode.IsLineTerminator(rune(cu)) {
			hadNewline = true
			l.consumeLineTerminator()
			continue
		}
		if cu == '*' && l.peekSecond() == '/' {
			l.iter.Incr()
			l.iter.Incr()
			return hadNewline, nil
		}
		l.iter.Incr()
	}
}
