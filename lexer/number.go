package lexer

import (
	"strconv"

	"github.com/minivm/emberjs/token"
	"github.com/minivm/emberjs/unicode"
)

// numAcc accumulates a numeric literal's integer digits, switching
// from a packed small-integer representation to a float64
// accumulator the moment the running value exceeds 255 — the
// SmallInt immediate is byte-wide, so anything larger must intern as
// a Number. The switch, once made, is one-way: later zero digits
// (e.g. the trailing zero in "2560") never bring the value back into
// range.
type numAcc struct {
	small      uint32
	big        float64
	overflowed bool
}

func (a *numAcc) addDigit(base, digit uint32) {
	if !a.overflowed {
		v := a.small*base + digit
		if v > 255 {
			a.overflowed = true
			a.big = float64(a.small)*float64(base) + float64(digit)
			return
		}
		a.small = v
		return
	}
	a.big = a.big*float64(base) + float64(digit)
}

func (a *numAcc) emit(l *Lexer, loc token.Locus) token.Tok {
	if !a.overflowed {
		return token.Tok{Kind: token.SmallInt, Imm: uint16(a.small), Locus: loc}
	}
	id := l.lits.CreateFromNumber(a.big)
	return token.Tok{Kind: token.Number, Imm: uint16(id), Locus: loc}
}

// scanNumber implements ECMA-262 v5, 7.8.3. The caller has already
// confirmed the current position starts a numeric literal (a decimal
// digit, or '.' followed by a digit).
func (l *Lexer) scanNumber() (token.Tok, error) {
	loc := l.locus()
	start := l.iter.GetOffset()

	if rune(l.iter.ReadNext()) == '0' {
		look := l.iter
		look.Incr()
		if c := rune(look.ReadNext()); c == 'x' || c == 'X' {
			return l.scanHexLiteral(loc)
		}
	}
	return l.scanDecimalLiteral(loc, start)
}

func (l *Lexer) scanHexLiteral(loc token.Locus) (token.Tok, error) {
	l.iter.Incr() // '0'
	l.iter.Incr() // 'x' / 'X'
	var acc numAcc
	count := 0
	for !l.iter.IsEOS() {
		r := rune(l.iter.ReadNext())
		if !unicode.IsHexDigit(r) {
			break
		}
		acc.addDigit(16, uint32(unicode.HexToInt(r)))
		count++
		l.iter.Incr()
	}
	if count == 0 {
		return token.Tok{}, l.fatalf(loc, "hexadecimal literal must have at least one digit")
	}
	if err := l.rejectTrailingIdentChar(loc); err != nil {
		return token.Tok{}, err
	}
	return acc.emit(l, loc), nil
}

func (l *Lexer) rejectTrailingIdentChar(loc token.Locus) error {
	if l.iter.IsEOS() {
		return nil
	}
	r := rune(l.iter.ReadNext())
	if r == '$' || r == '_' || unicode.IsLetter(r) {
		return l.fatalf(loc, "numeric literal is followed directly by an identifier character")
	}
	return nil
}

func (l *Lexer) scanDecimalLiteral(loc token.Locus, start int) (token.Tok, error) {
	leadingZero := !l.iter.IsEOS() && rune(l.iter.ReadNext()) == '0'
	intDigits := 0
	for !l.iter.IsEOS() {
		r := rune(l.iter.ReadNext())
		if r < '0' || r > '9' {
			break
		}
		intDigits++
		l.iter.Incr()
	}

	sawDot := false
	if !l.iter.IsEOS() && rune(l.iter.ReadNext()) == '.' {
		sawDot = true
		l.iter.Incr()
		for !l.iter.IsEOS() {
			r := rune(l.iter.ReadNext())
			if r < '0' || r > '9' {
				break
			}
			l.iter.Incr()
		}
		// Resolves the "1..toString()" ambiguity (flagged as a known
		// issue in the engine this was ported from) by rejecting a
		// second '.' immediately following the fractional part.
		if !l.iter.IsEOS() && rune(l.iter.ReadNext()) == '.' {
			return token.Tok{}, l.fatalf(loc, "unexpected second '.' in numeric literal")
		}
	}

	sawExponent := false
	if !l.iter.IsEOS() {
		if r := rune(l.iter.ReadNext()); r == 'e' || r == 'E' {
			look := l.iter
			look.Incr()
			if rr := rune(look.ReadNext()); rr == '+' || rr == '-' {
				look.Incr()
			}
			if unicode.IsDigit(rune(look.ReadNext())) {
				sawExponent = true
				l.iter.Incr()
				if rr := rune(l.iter.ReadNext()); rr == '+' || rr == '-' {
					l.iter.Incr()
				}
				for !l.iter.IsEOS() && unicode.IsDigit(rune(l.iter.ReadNext())) {
					l.iter.Incr()
				}
			}
		}
	}

	end := l.iter.GetOffset()
	if err := l.rejectTrailingIdentChar(loc); err != nil {
		return token.Tok{}, err
	}

	if !sawDot && !sawExponent && leadingZero && intDigits > 1 {
		if l.strictMode {
			return token.Tok{}, l.fatalf(loc, "octal literals are not allowed in strict mode")
		}
		return l.emitLegacyOctal(loc, start, end), nil
	}

	if sawDot || sawExponent {
		v, err := strconv.ParseFloat(string(l.source[start:end]), 64)
		if err != nil {
			return token.Tok{}, l.fatalf(loc, "malformed numeric literal")
		}
		id := l.lits.CreateFromNumber(v)
		return token.Tok{Kind: token.Number, Imm: uint16(id), Locus: loc}, nil
	}

	var acc numAcc
	for _, c := range l.source[start:end] {
		acc.addDigit(10, uint32(c-'0'))
	}
	return acc.emit(l, loc), nil
}

// emitLegacyOctal reproduces the lenient legacy-octal handling of the
// engine this was ported from: a leading-zero, length > 1 decimal
// literal is treated as octal without validating that every digit is
// <= 7. A digit like '9' is folded in at its face value rather than
// rejected, so e.g. "09" lexes to 9, not a parse error.
func (l *Lexer) emitLegacyOctal(loc token.Locus, start, end int) token.Tok {
	var acc numAcc
	for _, c := range l.source[start:end] {
		acc.addDigit(8, uint32(c-'0'))
	}
	return acc.emit(l, loc)
}
