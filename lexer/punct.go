package lexer

import "github.com/minivm/emberjs/token"

// scanPunctuator implements the maximal-munch punctuator table
// (ECMA-262 v5, 7.7). It is reached either because the current code
// unit cannot start any other token, or because driver rule 9 has
// already decided a leading '/' is division rather than a regular
// expression.
func (l *Lexer) scanPunctuator() (token.Tok, error) {
	loc := l.locus()
	cu := l.iter.ReadNext()
	l.iter.Incr()

	switch cu {
	case '{':
		return tokLoc(token.OpenBrace, loc), nil
	case '}':
		return tokLoc(token.CloseBrace, loc), nil
	case '(':
		return tokLoc(token.OpenParen, loc), nil
	case ')':
		return tokLoc(token.CloseParen, loc), nil
	case '[':
		return tokLoc(token.OpenSquare, loc), nil
	case ']':
		return tokLoc(token.CloseSquare, loc), nil
	case '.':
		return tokLoc(token.Dot, loc), nil
	case ';':
		return tokLoc(token.Semicolon, loc), nil
	case ',':
		return tokLoc(token.Comma, loc), nil
	case '?':
		return tokLoc(token.Query, loc), nil
	case ':':
		return tokLoc(token.Colon, loc), nil
	case '~':
		return tokLoc(token.Compl, loc), nil

	case '<':
		if l.iter.ReadNext() == '<' {
			l.iter.Incr()
			if l.iter.ReadNext() == '=' {
				l.iter.Incr()
				return tokLoc(token.LshiftEq, loc), nil
			}
			return tokLoc(token.Lshift, loc), nil
		}
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.LessEq, loc), nil
		}
		return tokLoc(token.Less, loc), nil

	case '>':
		if l.iter.ReadNext() == '>' {
			l.iter.Incr()
			if l.iter.ReadNext() == '>' {
				l.iter.Incr()
				if l.iter.ReadNext() == '=' {
					l.iter.Incr()
					return tokLoc(token.RshiftExEq, loc), nil
				}
				return tokLoc(token.RshiftEx, loc), nil
			}
			if l.iter.ReadNext() == '=' {
				l.iter.Incr()
				return tokLoc(token.RshiftEq, loc), nil
			}
			return tokLoc(token.Rshift, loc), nil
		}
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.GreaterEq, loc), nil
		}
		return tokLoc(token.Greater, loc), nil

	case '=':
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			if l.iter.ReadNext() == '=' {
				l.iter.Incr()
				return tokLoc(token.TripleEq, loc), nil
			}
			return tokLoc(token.DoubleEq, loc), nil
		}
		return tokLoc(token.Eq, loc), nil

	case '!':
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			if l.iter.ReadNext() == '=' {
				l.iter.Incr()
				return tokLoc(token.NotDoubleEq, loc), nil
			}
			return tokLoc(token.NotEq, loc), nil
		}
		return tokLoc(token.Not, loc), nil

	case '+':
		if l.iter.ReadNext() == '+' {
			l.iter.Incr()
			return tokLoc(token.DoublePlus, loc), nil
		}
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.PlusEq, loc), nil
		}
		return tokLoc(token.Plus, loc), nil

	case '-':
		if l.iter.ReadNext() == '-' {
			l.iter.Incr()
			return tokLoc(token.DoubleMinus, loc), nil
		}
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.MinusEq, loc), nil
		}
		return tokLoc(token.Minus, loc), nil

	case '*':
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.MultEq, loc), nil
		}
		return tokLoc(token.Mult, loc), nil

	case '%':
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.ModEq, loc), nil
		}
		return tokLoc(token.Mod, loc), nil

	case '&':
		if l.iter.ReadNext() == '&' {
			l.iter.Incr()
			return tokLoc(token.DoubleAnd, loc), nil
		}
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.AndEq, loc), nil
		}
		return tokLoc(token.And, loc), nil

	case '|':
		if l.iter.ReadNext() == '|' {
			l.iter.Incr()
			return tokLoc(token.DoubleOr, loc), nil
		}
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.OrEq, loc), nil
		}
		return tokLoc(token.Or, loc), nil

	case '^':
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.XorEq, loc), nil
		}
		return tokLoc(token.Xor, loc), nil

	case '/':
		if l.iter.ReadNext() == '=' {
			l.iter.Incr()
			return tokLoc(token.DivEq, loc), nil
		}
		return tokLoc(token.Div, loc), nil

	default:
		return token.Tok{}, l.fatalf(loc, "unexpected character")
	}
}
