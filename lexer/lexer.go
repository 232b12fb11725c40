// Package lexer turns UTF-8 ECMAScript 5.1 source text into a stream
// of tokens, one per call to NextToken. It owns a single
// utf8iter.Iterator into the caller's source buffer, a one-token
// put-back slot, and the previous/current token pair the one-token
// driver needs to disambiguate a leading '/' between division and a
// regular expression literal.
package lexer

import (
	"unicode/utf8"

	"github.com/minivm/emberjs/literal"
	"github.com/minivm/emberjs/token"
	"github.com/minivm/emberjs/unicode"
	"github.com/minivm/emberjs/utf8iter"
)

const (
	carriageReturn uint16 = 0x000D
	lineFeed       uint16 = 0x000A
)

// Lexer is a value-owning scanner over one source buffer. It is not
// safe for concurrent use — the engine runs exactly one lexer per
// script, single-threaded.
type Lexer struct {
	source []byte
	iter   utf8iter.Iterator
	lits   *literal.Table
	lines  *token.LineTable

	previous   token.Tok
	current    token.Tok
	putBack    *token.Tok
	strictMode bool

	// ShowOpcodes is plumbed straight through from Init for the
	// benefit of the (external) code generator and interpreter; the
	// lexer itself never consults it.
	ShowOpcodes bool
}

// Init validates source as UTF-8 and constructs a Lexer ready to
// produce tokens from its start. Invalid UTF-8 is a fatal Init
// error, per the engine's external interface contract.
func Init(source []byte, showOpcodes bool) (*Lexer, error) {
	if !utf8.Valid(source) {
		return nil, &IllegalSource{Locus: 0, Message: "source is not valid UTF-8"}
	}
	return &Lexer{
		source:      source,
		iter:        utf8iter.New(source),
		lits:        literal.New(),
		lines:       token.NewLineTable(),
		previous:    token.EmptyTok,
		current:     token.EmptyTok,
		ShowOpcodes: showOpcodes,
	}, nil
}

// Literals returns the literal table this lexer interns into. Its
// lifetime matches the lexer's: the (external) parser and code
// generator share it for the rest of the parse/execute cycle.
func (l *Lexer) Literals() *literal.Table {
	return l.lits
}

// NextToken returns the put-back token if SaveToken pushed one back;
// otherwise it scans and returns the next token, advancing
// previous/current. Returning a put-back token does not touch
// previous/current — SaveToken only ever pushes back the token most
// recently returned by this same method, so previous/current already
// reflect it correctly.
func (l *Lexer) NextToken() (token.Tok, error) {
	if l.putBack != nil {
		t := *l.putBack
		l.putBack = nil
		return t, nil
	}
	lastKind := l.current.Kind
	tok, err := l.scanOne(lastKind)
	if err != nil {
		return token.Tok{}, err
	}
	l.previous = l.current
	l.current = tok
	return tok, nil
}

// SaveToken pushes tok back onto the stream; the next NextToken call
// returns it without scanning. The slot must be empty — pushing back
// twice in a row without an intervening NextToken is a caller bug.
func (l *Lexer) SaveToken(tok token.Tok) {
	if l.putBack != nil {
		panic("lexer: SaveToken called with the put-back slot already occupied")
	}
	saved := tok
	l.putBack = &saved
}

// PrevToken returns the token NextToken scanned before the most
// recently scanned one (the previous slot, not the current one).
func (l *Lexer) PrevToken() token.Tok {
	return l.previous
}

// Seek repositions the lexer at a byte offset previously obtained
// from a token's Locus or from LocusToLineAndColumn's input, clearing
// any put-back token. Scanning one token never suspends partway
// through, so there is never a partial token in flight when Seek is
// callable.
func (l *Lexer) Seek(offset int) {
	l.iter.SetOffset(offset)
	l.putBack = nil
}

// SetStrictMode toggles whether Future Reserved Words lex as
// Keyword tokens (strict) or as plain Name tokens (non-strict). It
// also governs whether a legacy octal numeric literal is fatal.
func (l *Lexer) SetStrictMode(strict bool) {
	l.strictMode = strict
}

// LocusToLineAndColumn converts a byte offset into a zero-based line
// and column, for diagnostics.
func (l *Lexer) LocusToLineAndColumn(locus token.Locus) token.Position {
	return l.lines.Position(int(locus))
}

func (l *Lexer) locus() token.Locus {
	return token.Locus(l.iter.GetOffset())
}

func tokLoc(kind token.Token, loc token.Locus) token.Tok {
	return token.Tok{Kind: kind, Locus: loc}
}

// scanOne implements the one-token driver (ECMA-262 v5, 7): it skips
// whitespace and comments, restarting as needed, and dispatches to
// the sub-scanner that matches the code unit at the current offset.
// lastEmitted is the kind of the token most recently returned by
// NextToken, needed to disambiguate a leading '/'.
func (l *Lexer) scanOne(lastEmitted token.Token) (token.Tok, error) {
	for {
		for !l.iter.IsEOS() && unicode.IsWhiteSpace(rune(l.iter.ReadNext())) {
			l.iter.Incr()
		}

		if l.iter.IsEOS() {
			return tokLoc(token.Eof, l.locus()), nil
		}

		cu := l.iter.ReadNext()
		r := rune(cu)

		switch {
		case unicode.IsLineTerminator(r):
			loc := l.locus()
			l.consumeLineTerminator()
			return tokLoc(token.Newline, loc), nil

		case canStartIdentifier(cu):
			return l.scanIdentifier()

		case unicode.IsDigit(r) || (cu == '.' && l.peekIsDigitAfterDot()):
			return l.scanNumber()

		case cu == '\'' || cu == '"':
			return l.scanString()

		case cu == '/' && l.peekSecond() == '*':
			loc := l.locus()
			hadNewline, err := l.consumeBlockComment(loc)
			if err != nil {
				return token.Tok{}, err
			}
			if hadNewline {
				return tokLoc(token.Newline, loc), nil
			}
			continue

		case cu == '/' && l.peekSecond() == '/':
			l.consumeLineComment()
			continue

		case cu == '/':
			if token.EndsExpression(lastEmitted) {
				return l.scanPunctuator()
			}
			return l.scanRegexp()

		default:
			return l.scanPunctuator()
		}
	}
}

// peekSecond returns the code unit one past the current position
// without consuming anything, by stepping a throwaway copy of the
// iterator (a small value type, cheap to copy).
func (l *Lexer) peekSecond() uint16 {
	look := l.iter
	look.Incr()
	return look.ReadNext()
}

// peekIsDigitAfterDot reports whether the code unit after a '.' at
// the current position is a decimal digit, distinguishing a leading-
// dot numeric literal from a bare Dot punctuator.
func (l *Lexer) peekIsDigitAfterDot() bool {
	return unicode.IsDigit(rune(l.peekSecond()))
}

func canStartIdentifier(cu uint16) bool {
	if cu == '$' || cu == '_' || cu == '\\' {
		return true
	}
	return unicode.IsLetter(rune(cu))
}

func isIdentifierPart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	return unicode.IsLetter(r) || unicode.IsCombiningMark(r) || unicode.IsDigit(r) || unicode.IsConnectorPunctuation(r)
}
