package lexer

import (
	"unicode/utf8"

	"github.com/minivm/emberjs/token"
	"github.com/minivm/emberjs/unicode"
)

// scanIdentifier implements ECMA-262 v5, 7.6: an identifier or
// keyword, with \uHHHH escapes allowed anywhere in the name. The
// caller has already confirmed the current code unit can start one.
func (l *Lexer) scanIdentifier() (token.Tok, error) {
	loc := l.locus()
	tokenStart := l.iter.GetOffset()
	bookmark := tokenStart
	var buf []byte
	hadEscape := false

	for !l.iter.IsEOS() {
		cu := l.iter.ReadNext()
		if cu == '\\' {
			buf = append(buf, l.source[bookmark:l.iter.GetOffset()]...)
			hadEscape = true
			l.iter.Incr()
			if l.iter.IsEOS() || l.iter.ReadNext() != 'u' {
				return token.Tok{}, l.fatalf(loc, "identifier escape must be \\u followed by four hex digits")
			}
			l.iter.Incr()
			val, err := l.readHexDigits(loc, 4)
			if err != nil {
				return token.Tok{}, err
			}
			r := rune(val)
			if !isIdentifierPart(r) {
				return token.Tok{}, l.fatalf(loc, "escape in identifier does not name an identifier character")
			}
			var tmp [utf8.UTFMax]byte
			n := utf8.EncodeRune(tmp[:], r)
			buf = append(buf, tmp[:n]...)
			bookmark = l.iter.GetOffset()
			continue
		}
		if !isIdentifierPart(rune(cu)) {
			break
		}
		l.iter.Incr()
	}

	end := l.iter.GetOffset()
	var lexeme []byte
	if hadEscape {
		buf = append(buf, l.source[bookmark:end]...)
		lexeme = buf
	} else {
		lexeme = l.source[tokenStart:end]
	}
	return l.finishIdentifier(loc, lexeme, hadEscape)
}

func (l *Lexer) finishIdentifier(loc token.Locus, lexeme []byte, hadEscape bool) (token.Tok, error) {
	if !hadEscape && isAllASCIILower(lexeme) {
		switch string(lexeme) {
		case "true":
			return token.Tok{Kind: token.Bool, Imm: 1, Locus: loc}, nil
		case "false":
			return token.Tok{Kind: token.Bool, Imm: 0, Locus: loc}, nil
		case "null":
			return token.Tok{Kind: token.Null, Locus: loc}, nil
		}
		if kw, ok := token.LookupKeyword(string(lexeme)); ok {
			if l.strictMode || !token.IsFutureReserved(kw) {
				return token.Tok{Kind: token.Keyword, Imm: uint16(kw), Locus: loc}, nil
			}
		}
	}
	id := l.lits.CreateFromString(lexeme)
	return token.Tok{Kind: token.Name, Imm: uint16(id), Locus: loc}, nil
}

func isAllASCIILower(b []byte) bool {
	for _, c := range b {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return len(b) > 0
}

// readHexDigits reads exactly n hex digits from the current
// position, advancing past each, and returns their value. Shared by
// \uHHHH (n=4) identifier/string escapes and \xHH (n=2) string
// escapes.
func (l *Lexer) readHexDigits(loc token.Locus, n int) (uint32, error) {
	var v uint32
	for i := 0; i < n; i++ {
		if l.iter.IsEOS() {
			return 0, l.fatalf(loc, "incomplete hex escape")
		}
		r := rune(l.iter.ReadNext())
		if !unicode.IsHexDigit(r) {
			return 0, l.fatalf(loc, "invalid hex digit in escape sequence")
		}
		v = v*16 + uint32(unicode.HexToInt(r))
		l.iter.Incr()
	}
	return v, nil
}
