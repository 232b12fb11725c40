package unicode

// category identifies one of the Unicode general categories the
// lexer grammar groups together (ECMA-262 v5, 7.6).
type category byte

const (
	catLu category = iota // uppercase letter
	catLl                 // lowercase letter
	catLt                 // titlecase letter
	catLm                 // modifier letter
	catLo                 // other letter
	catNl                 // letter number
	catMn                 // nonspacing mark
	catMc                 // spacing combining mark
	catNd                 // decimal digit number
	catPc                 // connector punctuation
	catZs                 // space separator
)

// rangeEntry is one inclusive code point range belonging to a single
// category. The full table is a flat, compile-time-constant array;
// queries sweep only the entries tagged with a category of interest.
//
// This is deliberately a compact, representative slice of Unicode
// (major scripts plus the ASCII fast path covers everyday source
// text) rather than the full Unicode Character Database: the spec
// scopes internationalization to "Unicode 3.0-era category tables"
// and explicitly disclaims full conformance, so the table favours
// the scripts a constrained-device engine is likely to encounter
// over exhaustive coverage.
type rangeEntry struct {
	cat    category
	lo, hi rune
}

var categoryTable = [...]rangeEntry{
	// Uppercase letters.
	{catLu, 0x0041, 0x005A}, // Basic Latin
	{catLu, 0x00C0, 0x00D6}, // Latin-1 Supplement
	{catLu, 0x00D8, 0x00DE},
	{catLu, 0x0391, 0x03A1}, // Greek
	{catLu, 0x03A3, 0x03AB},
	{catLu, 0x0410, 0x042F}, // Cyrillic

	// Lowercase letters.
	{catLl, 0x0061, 0x007A}, // Basic Latin
	{catLl, 0x00DF, 0x00F6}, // Latin-1 Supplement
	{catLl, 0x00F8, 0x00FF},
	{catLl, 0x03B1, 0x03C9}, // Greek
	{catLl, 0x0430, 0x044F}, // Cyrillic

	// Titlecase letters (rare, but distinct from Lu/Ll).
	{catLt, 0x01C5, 0x01C5},
	{catLt, 0x01C8, 0x01C8},
	{catLt, 0x01CB, 0x01CB},
	{catLt, 0x01F2, 0x01F2},

	// Modifier letters.
	{catLm, 0x02B0, 0x02C1},

	// Other letters (scripts with no case distinction).
	{catLo, 0x05D0, 0x05EA}, // Hebrew
	{catLo, 0x0621, 0x064A}, // Arabic
	{catLo, 0x0904, 0x0939}, // Devanagari
	{catLo, 0x3041, 0x3096}, // Hiragana
	{catLo, 0x30A1, 0x30FA}, // Katakana
	{catLo, 0x4E00, 0x9FFF}, // CJK Unified Ideographs
	{catLo, 0xAC00, 0xD7A3}, // Hangul Syllables

	// Letter numbers.
	{catNl, 0x2160, 0x2182}, // Roman numerals

	// Nonspacing marks.
	{catMn, 0x0300, 0x036F}, // Combining Diacritical Marks
	{catMn, 0x0483, 0x0487}, // Cyrillic combining
	{catMn, 0x0591, 0x05BD}, // Hebrew points

	// Spacing combining marks.
	{catMc, 0x0903, 0x0903},
	{catMc, 0x093B, 0x093B},
	{catMc, 0x093E, 0x0940}, // Devanagari vowel signs

	// Decimal digit numbers.
	{catNd, 0x0030, 0x0039}, // ASCII
	{catNd, 0x0660, 0x0669}, // Arabic-Indic
	{catNd, 0x0966, 0x096F}, // Devanagari
	{catNd, 0xFF10, 0xFF19}, // Fullwidth

	// Connector punctuation.
	{catPc, 0x005F, 0x005F}, // low line
	{catPc, 0x203F, 0x2040},
	{catPc, 0xFF3F, 0xFF3F},

	// Space separators (note: U+2028/U+2029 are line/paragraph
	// separators, category Zl/Zp, and are deliberately excluded
	// here; they are handled by IsLineTerminator instead).
	{catZs, 0x0020, 0x0020},
	{catZs, 0x00A0, 0x00A0},
	{catZs, 0x1680, 0x1680},
	{catZs, 0x2000, 0x200A},
	{catZs, 0x202F, 0x202F},
	{catZs, 0x205F, 0x205F},
	{catZs, 0x3000, 0x3000},
}

func inCategory(r rune, cats ...category) bool {
	for _, entry := range categoryTable {
		if r < entry.lo || r > entry.hi {
			continue
		}
		for _, c := range cats {
			if entry.cat == c {
				return true
			}
		}
	}
	return false
}
