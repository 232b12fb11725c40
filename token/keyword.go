package token

// KeywordID identifies one of the ECMAScript 5.1 reserved words. A
// Keyword token's immediate field holds one of these values.
type KeywordID int

const (
	KeywordNone KeywordID = iota
	KeywordBreak
	KeywordCase
	KeywordCatch
	KeywordClass
	KeywordConst
	KeywordContinue
	KeywordDebugger
	KeywordDefault
	KeywordDelete
	KeywordDo
	KeywordElse
	KeywordEnum
	KeywordExport
	KeywordExtends
	KeywordFinally
	KeywordFor
	KeywordFunction
	KeywordIf
	KeywordIn
	KeywordInstanceof
	KeywordInterface
	KeywordImport
	KeywordImplements
	KeywordLet
	KeywordNew
	KeywordPackage
	KeywordPrivate
	KeywordProtected
	KeywordPublic
	KeywordReturn
	KeywordStatic
	KeywordSuper
	KeywordSwitch
	KeywordThis
	KeywordThrow
	KeywordTry
	KeywordTypeof
	KeywordVar
	KeywordVoid
	KeywordWhile
	KeywordWith
	KeywordYield
)

var keywordNames = [...]string{
	KeywordBreak:      "break",
	KeywordCase:       "case",
	KeywordCatch:      "catch",
	KeywordClass:      "class",
	KeywordConst:      "const",
	KeywordContinue:   "continue",
	KeywordDebugger:   "debugger",
	KeywordDefault:    "default",
	KeywordDelete:     "delete",
	KeywordDo:         "do",
	KeywordElse:       "else",
	KeywordEnum:       "enum",
	KeywordExport:     "export",
	KeywordExtends:    "extends",
	KeywordFinally:    "finally",
	KeywordFor:        "for",
	KeywordFunction:   "function",
	KeywordIf:         "if",
	KeywordIn:         "in",
	KeywordInstanceof: "instanceof",
	KeywordInterface:  "interface",
	KeywordImport:     "import",
	KeywordImplements: "implements",
	KeywordLet:        "let",
	KeywordNew:        "new",
	KeywordPackage:    "package",
	KeywordPrivate:    "private",
	KeywordProtected:  "protected",
	KeywordPublic:     "public",
	KeywordReturn:     "return",
	KeywordStatic:     "static",
	KeywordSuper:      "super",
	KeywordSwitch:     "switch",
	KeywordThis:       "this",
	KeywordThrow:      "throw",
	KeywordTry:        "try",
	KeywordTypeof:     "typeof",
	KeywordVar:        "var",
	KeywordVoid:       "void",
	KeywordWhile:      "while",
	KeywordWith:       "with",
	KeywordYield:      "yield",
}

func (k KeywordID) String() string {
	if k >= 0 && int(k) < len(keywordNames) && keywordNames[k] != "" {
		return keywordNames[k]
	}
	return "keyword(?)"
}

var keywordLookup map[string]KeywordID

// futureReserved holds the Future Reserved Words (ECMA-262 v5, 7.6.1.2)
// that are only treated as keywords in strict mode.
var futureReserved map[KeywordID]bool

func init() {
	keywordLookup = make(map[string]KeywordID, len(keywordNames))
	for k, name := range keywordNames {
		if name != "" {
			keywordLookup[name] = KeywordID(k)
		}
	}

	futureReserved = map[KeywordID]bool{
		KeywordInterface:  true,
		KeywordImplements: true,
		KeywordLet:        true,
		KeywordPackage:    true,
		KeywordPrivate:    true,
		KeywordProtected:  true,
		KeywordPublic:     true,
		KeywordStatic:     true,
		KeywordYield:      true,
	}
}

// LookupKeyword reports whether lexeme names a reserved word, and if
// so, which one.
func LookupKeyword(lexeme string) (KeywordID, bool) {
	k, ok := keywordLookup[lexeme]
	return k, ok
}

// IsFutureReserved reports whether k is only reserved in strict mode.
// Outside strict mode, an identifier with this spelling lexes as a
// plain Name rather than a Keyword.
func IsFutureReserved(k KeywordID) bool {
	return futureReserved[k]
}
