package lexer

import (
	"github.com/minivm/emberjs/token"
	"github.com/minivm/emberjs/unicode"
)

// scanRegexp implements ECMA-262 v5, 7.8.5. The caller (driver rule
// 9) has already decided the current '/' opens a regular expression
// rather than division. The body is copied verbatim — no escape
// decoding — since the parser re-lexes the regex body itself; this
// scanner's only job is finding the matching closing '/'.
func (l *Lexer) scanRegexp() (token.Tok, error) {
	loc := l.locus()
	start := l.iter.GetOffset()
	l.iter.Incr() // opening '/'

	classDepth := 0
body:
	for {
		if l.iter.IsEOS() {
			return token.Tok{}, l.fatalf(loc, "unterminated regular expression literal")
		}
		cu := l.iter.ReadNext()
		if unicode.IsLineTerminator(rune(cu)) {
			return token.Tok{}, l.fatalf(loc, "line terminator in regular expression literal")
		}
		switch {
		case cu == '\\':
			l.iter.Incr()
			if l.iter.IsEOS() || unicode.IsLineTerminator(rune(l.iter.ReadNext())) {
				return token.Tok{}, l.fatalf(loc, "unterminated regular expression literal")
			}
			l.iter.Incr() // the escaped code unit, verbatim
		case cu == '[':
			classDepth++
			l.iter.Incr()
		case cu == ']':
			if classDepth > 0 {
				classDepth--
			}
			l.iter.Incr()
		case cu == '/' && classDepth == 0:
			l.iter.Incr()
			break body
		default:
			l.iter.Incr()
		}
	}

	for !l.iter.IsEOS() && unicode.IsWordChar(rune(l.iter.ReadNext())) {
		l.iter.Incr()
	}

	end := l.iter.GetOffset()
	id := l.lits.CreateFromString(l.source[start:end])
	return token.Tok{Kind: token.Regexp, Imm: uint16(id), Locus: loc}, nil
}
