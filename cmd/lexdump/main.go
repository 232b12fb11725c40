// Command lexdump drives the lexer over a script and prints one line
// per token: its kind, source locus, and decoded literal or immediate
// value where the kind carries one. It exists to exercise the lexer
// and literal table by hand; it does not parse or evaluate anything.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/minivm/emberjs/lexer"
	"github.com/minivm/emberjs/literal"
	"github.com/minivm/emberjs/token"
)

func main() {
	strict := flag.Bool("strict", false, "lex in strict mode")
	flag.Parse()

	src, err := readSource(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "lexdump:", err)
		os.Exit(1)
	}

	if err := dump(src, *strict, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "lexdump:", err)
		os.Exit(1)
	}
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func dump(src []byte, strict bool, out io.Writer) error {
	l, err := lexer.Init(src, false)
	if err != nil {
		return err
	}
	l.SetStrictMode(strict)

	for {
		tok, err := l.NextToken()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, describe(l, tok))
		if tok.Kind == token.Eof {
			return nil
		}
	}
}

func describe(l *lexer.Lexer, tok token.Tok) string {
	pos := l.LocusToLineAndColumn(tok.Locus)
	base := fmt.Sprintf("%d:%d\t%s", pos.Line+1, pos.Column+1, tok.Kind)

	switch {
	case tok.Kind == token.SmallInt:
		return fmt.Sprintf("%s\t%d", base, tok.SmallInt())
	case tok.Kind == token.Keyword:
		return fmt.Sprintf("%s\t%s", base, tok.Keyword())
	case tok.Kind == token.Bool:
		return fmt.Sprintf("%s\t%v", base, tok.Bool())
	case tok.Kind == token.Number:
		return fmt.Sprintf("%s\t%v", base, l.Literals().Get(literal.ID(tok.LiteralID())).Number)
	case tok.Kind.IsLiteralBearing():
		return fmt.Sprintf("%s\t%q", base, l.Literals().String(literal.ID(tok.LiteralID())))
	default:
		return base
	}
}
