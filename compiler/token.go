package compiler

import "fmt"

// ---------------------------------------------------------------------------
// Lexemes: classified tokens for Shadow source
// ---------------------------------------------------------------------------

// LexemeKind identifies the classification of a lexeme.
type LexemeKind int

const (
	// Keywords
	LexFn     LexemeKind = iota // fn
	LexReturn                   // return

	// Literals and names
	LexInteger    // 42 (signed 64-bit)
	LexIdentifier // main, foo

	// Punctuation
	LexOpenParen  // (
	LexCloseParen // )
	LexOpenBrace  // {
	LexCloseBrace // }
	LexSemicolon  // ;
	LexDelimiter  // ,
	LexNewline    // \n
)

var lexemeNames = map[LexemeKind]string{
	LexFn:         "fn",
	LexReturn:     "return",
	LexInteger:    "INTEGER",
	LexIdentifier: "IDENTIFIER",
	LexOpenParen:  "(",
	LexCloseParen: ")",
	LexOpenBrace:  "{",
	LexCloseBrace: "}",
	LexSemicolon:  ";",
	LexDelimiter:  ",",
	LexNewline:    "NEWLINE",
}

func (k LexemeKind) String() string {
	if name, ok := lexemeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Lexeme(%d)", k)
}

// Lexeme is a single classified token plus its source position.
// Lexemes are immutable once produced by the lexer.
type Lexeme struct {
	Kind  LexemeKind
	Text  string   // the raw source text
	Value int64    // set for integer literals only
	Pos   Position // span of the token in the source
}

func (l Lexeme) String() string {
	switch l.Kind {
	case LexInteger:
		return fmt.Sprintf("INTEGER(%d)", l.Value)
	case LexIdentifier:
		return fmt.Sprintf("IDENTIFIER(%q)", l.Text)
	case LexNewline:
		return "NEWLINE"
	default:
		return l.Kind.String()
	}
}

// Reserved words mapped to their lexeme kinds. Checked before the
// identifier classification, so an identifier never spells a keyword.
var reservedWords = map[string]LexemeKind{
	"fn":     LexFn,
	"return": LexReturn,
}

// Single-character punctuation lexemes.
var punctuation = map[byte]LexemeKind{
	'(': LexOpenParen,
	')': LexCloseParen,
	'{': LexOpenBrace,
	'}': LexCloseBrace,
	';': LexSemicolon,
	',': LexDelimiter,
}
