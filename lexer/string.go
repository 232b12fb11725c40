package lexer

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/minivm/emberjs/token"
	"github.com/minivm/emberjs/unicode"
)

// scanString implements ECMA-262 v5, 7.8.4. The token's Locus is the
// offset of the opening quote itself (one byte before the first
// content byte) rather than the usual token-start convention, so
// that parser diagnostics can point at the quote — this is carried
// over unchanged from the engine this was ported from.
func (l *Lexer) scanString() (token.Tok, error) {
	quote := l.iter.ReadNext()
	openLoc := l.locus()
	l.iter.Incr()

	contentStart := l.iter.GetOffset()
	bookmark := contentStart
	var buf []byte
	hadEscape := false
	var pendingHigh uint16
	havePendingHigh := false

	for {
		if l.iter.IsEOS() {
			return token.Tok{}, l.fatalf(openLoc, "unterminated string literal")
		}
		cu := l.iter.ReadNext()
		if cu == quote {
			break
		}
		if unicode.IsLineTerminator(rune(cu)) {
			return token.Tok{}, l.fatalf(openLoc, "line terminator in string literal")
		}
		if cu != '\\' {
			// A lone high surrogate from a preceding \u escape only
			// combines with an immediately following low-surrogate
			// escape (case ec == 'u' below); any other content breaks
			// the pair, so flush it now, before this raw run is
			// appended, to preserve decoding order.
			if havePendingHigh {
				appendLoneSurrogate(&buf, pendingHigh)
				havePendingHigh = false
			}
			l.iter.Incr()
			continue
		}

		buf = append(buf, l.source[bookmark:l.iter.GetOffset()]...)
		hadEscape = true
		l.iter.Incr() // consume '\'
		if l.iter.IsEOS() {
			return token.Tok{}, l.fatalf(openLoc, "unterminated escape sequence in string literal")
		}
		ec := l.iter.ReadNext()

		switch {
		case unicode.IsLineTerminator(rune(ec)):
			if ec == carriageReturn {
				l.iter.Incr()
				if !l.iter.IsEOS() && l.iter.ReadNext() == lineFeed {
					l.iter.Incr()
				}
			} else {
				l.iter.Incr()
			}

		case ec == 'b':
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, 0x08)
			l.iter.Incr()
		case ec == 't':
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, 0x09)
			l.iter.Incr()
		case ec == 'n':
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, 0x0A)
			l.iter.Incr()
		case ec == 'v':
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, 0x0B)
			l.iter.Incr()
		case ec == 'f':
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, 0x0C)
			l.iter.Incr()
		case ec == 'r':
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, 0x0D)
			l.iter.Incr()
		case ec == '"':
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, '"')
			l.iter.Incr()
		case ec == '\'':
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, '\'')
			l.iter.Incr()
		case ec == '\\':
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, '\\')
			l.iter.Incr()

		case ec == 'x':
			l.iter.Incr()
			v, err := l.readHexDigits(openLoc, 2)
			if err != nil {
				return token.Tok{}, err
			}
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, uint16(v))

		case ec == 'u':
			l.iter.Incr()
			v, err := l.readHexDigits(openLoc, 4)
			if err != nil {
				return token.Tok{}, err
			}
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, uint16(v))

		case ec == '0':
			look := l.iter
			look.Incr()
			if !look.IsEOS() && unicode.IsDigit(rune(look.ReadNext())) {
				return token.Tok{}, l.fatalf(openLoc, "octal escape sequences are not supported")
			}
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, 0)
			l.iter.Incr()

		case ec >= '1' && ec <= '9':
			return token.Tok{}, l.fatalf(openLoc, "octal escape sequences are not supported")

		default:
			appendCodeUnit(&buf, &pendingHigh, &havePendingHigh, ec)
			l.iter.Incr()
		}
		bookmark = l.iter.GetOffset()
	}

	end := l.iter.GetOffset()
	var lexeme []byte
	if hadEscape {
		buf = append(buf, l.source[bookmark:end]...)
		if havePendingHigh {
			appendLoneSurrogate(&buf, pendingHigh)
		}
		lexeme = buf
	} else {
		lexeme = l.source[contentStart:end]
	}
	l.iter.Incr() // consume closing quote

	id := l.lits.CreateFromString(lexeme)
	return token.Tok{Kind: token.String, Imm: uint16(id), Locus: openLoc}, nil
}

// appendCodeUnit appends a decoded UTF-16 code unit to buf as UTF-8,
// combining an unpaired high surrogate with an immediately following
// low surrogate into a single 4-byte sequence (ECMA-262 v5, 7.8.4). A
// high surrogate not followed by its low half, or a low surrogate
// with no preceding high half, is encoded directly (WTF-8 style) so
// storage always round-trips even for malformed escape sequences.
func appendCodeUnit(buf *[]byte, pendingHigh *uint16, havePendingHigh *bool, cu uint16) {
	if *havePendingHigh {
		if cu >= 0xDC00 && cu <= 0xDFFF {
			r := utf16.DecodeRune(rune(*pendingHigh), rune(cu))
			var tmp [utf8.UTFMax]byte
			n := utf8.EncodeRune(tmp[:], r)
			*buf = append(*buf, tmp[:n]...)
			*havePendingHigh = false
			return
		}
		appendLoneSurrogate(buf, *pendingHigh)
		*havePendingHigh = false
	}

	if cu >= 0xD800 && cu <= 0xDBFF {
		*pendingHigh = cu
		*havePendingHigh = true
		return
	}
	if cu >= 0xDC00 && cu <= 0xDFFF {
		appendLoneSurrogate(buf, cu)
		return
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], rune(cu))
	*buf = append(*buf, tmp[:n]...)
}

// appendLoneSurrogate encodes a surrogate code unit (0xD800-0xDFFF)
// using the 3-byte UTF-8 pattern it would occupy if it were a valid
// scalar value, the WTF-8 convention for representing an unpaired
// surrogate in an otherwise-UTF-8 byte string.
func appendLoneSurrogate(buf *[]byte, cu uint16) {
	*buf = append(*buf,
		0xE0|byte(cu>>12),
		0x80|byte((cu>>6)&0x3F),
		0x80|byte(cu&0x3F),
	)
}
