// Package unicode answers the small set of Unicode character class
// questions the lexer needs (ECMA-262 v5, 7.2-7.6): is a code point a
// Letter, a Combining Mark, a Digit, Connector Punctuation,
// whitespace, or a line terminator. All queries are pure and total,
// except HexToInt which has a documented precondition.
//
// The engine works in 16-bit code units; classification only matters
// for code points in the Basic Multilingual Plane; astral characters
// are handled by the lexer as \u-escaped pairs, never classified
// directly here.
package unicode

// IsLetter reports whether r is a Unicode Letter: the union of
// categories Lu, Ll, Lt, Lm, Lo, and Nl.
func IsLetter(r rune) bool {
	if 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' {
		return true
	}
	if r < 0x80 {
		return false
	}
	return inCategory(r, catLu, catLl, catLt, catLm, catLo, catNl)
}

// IsCombiningMark reports whether r is a Unicode Combining Mark:
// the union of categories Mn and Mc.
func IsCombiningMark(r rune) bool {
	if r < 0x80 {
		return false
	}
	return inCategory(r, catMn, catMc)
}

// IsDigit reports whether r is a Unicode decimal digit (category Nd).
func IsDigit(r rune) bool {
	if '0' <= r && r <= '9' {
		return true
	}
	if r < 0x80 {
		return false
	}
	return inCategory(r, catNd)
}

// IsConnectorPunctuation reports whether r is Connector Punctuation
// (category Pc), e.g. '_' or the undertie U+203F.
func IsConnectorPunctuation(r rune) bool {
	if r == '_' {
		return true
	}
	if r < 0x80 {
		return false
	}
	return inCategory(r, catPc)
}

// IsSpaceSeparator reports whether r belongs to category Zs.
func IsSpaceSeparator(r rune) bool {
	if r == ' ' {
		return true
	}
	if r < 0x80 {
		return false
	}
	return inCategory(r, catZs)
}

// Whitespace code points that are not in category Zs but are still
// treated as whitespace by the grammar (ECMA-262 v5, 7.2).
const (
	charTab            rune = 0x0009
	charVerticalTab    rune = 0x000B
	charFormFeed       rune = 0x000C
	charSpace          rune = 0x0020
	charNoBreakSpace   rune = 0x00A0
	charByteOrderMark  rune = 0xFEFF
	charZeroWidthNonJ  rune = 0x200C
	charZeroWidthJoin  rune = 0x200D
	charLineFeed       rune = 0x000A
	charCarriageReturn rune = 0x000D
	charLineSep        rune = 0x2028
	charParagraphSep   rune = 0x2029
)

// IsWhiteSpace reports whether r is whitespace: Tab, Vertical Tab,
// Form Feed, Space, No-Break Space, the Byte Order Mark, or any
// category-Zs code point.
func IsWhiteSpace(r rune) bool {
	switch r {
	case charTab, charVerticalTab, charFormFeed, charSpace, charNoBreakSpace, charByteOrderMark:
		return true
	}
	return IsSpaceSeparator(r)
}

// IsLineTerminator reports whether r ends a line: LF, CR, Line
// Separator (U+2028), or Paragraph Separator (U+2029).
func IsLineTerminator(r rune) bool {
	switch r {
	case charLineFeed, charCarriageReturn, charLineSep, charParagraphSep:
		return true
	default:
		return false
	}
}

// IsFormatControl reports whether r is one of the three format
// control characters the grammar treats specially: ZWNJ, ZWJ, or the
// Byte Order Mark.
func IsFormatControl(r rune) bool {
	switch r {
	case charZeroWidthNonJ, charZeroWidthJoin, charByteOrderMark:
		return true
	default:
		return false
	}
}

// IsWordChar reports whether r is in the regular expression \w
// class: [A-Za-z0-9_].
func IsWordChar(r rune) bool {
	return 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '_'
}

// IsHexDigit reports whether r is a valid argument to HexToInt.
func IsHexDigit(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

// HexToInt returns the numeric value of a hex digit in [0,15].
//
// Precondition: IsHexDigit(r). Violating it is a caller bug, not a
// recoverable condition, so HexToInt panics rather than returning an
// error the caller would have to remember to check.
func HexToInt(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10
	default:
		panic("unicode: HexToInt called with non-hex code unit")
	}
}
