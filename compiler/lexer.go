package compiler

import "strconv"

// ---------------------------------------------------------------------------
// Lexer: scanner for Shadow source
// ---------------------------------------------------------------------------

// Lexer scans a source buffer left to right, producing positioned
// lexemes. The scan is a single pass with no backtracking: each step
// consumes a maximal run of one character class.
type Lexer struct {
	input string
	pos   int // offset of the next unconsumed byte
	line  int // zero-based line of the cursor
	col   int // zero-based column of the cursor
}

// NewLexer creates a lexer for the given source text.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Lex tokenizes an entire source buffer. The first unrecognised token
// aborts the pass and is returned as the only error.
func Lex(source string) ([]Lexeme, *Error) {
	return NewLexer(source).Lex()
}

// Lex consumes the remaining input and returns the lexeme sequence.
func (l *Lexer) Lex() ([]Lexeme, *Error) {
	var lexemes []Lexeme

	for l.pos < len(l.input) {
		ch := l.input[l.pos]

		switch {
		case isAlpha(ch):
			// Alphabetic run: keyword if reserved, identifier otherwise.
			start, startCol := l.pos, l.col
			for l.pos < len(l.input) && isAlpha(l.input[l.pos]) {
				l.advance()
			}
			text := l.input[start:l.pos]
			kind := LexIdentifier
			if kw, ok := reservedWords[text]; ok {
				kind = kw
			}
			lexemes = append(lexemes, Lexeme{
				Kind: kind,
				Text: text,
				Pos:  Position{Line: l.line, Column: startCol, Length: len(text)},
			})

		case isDigit(ch):
			// Digit run: signed 64-bit integer literal. A run that does
			// not fit in 64 bits is a lexical error, not a wraparound.
			start, startCol := l.pos, l.col
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.advance()
			}
			text := l.input[start:l.pos]
			pos := Position{Line: l.line, Column: startCol, Length: len(text)}
			value, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, unrecognisedToken(text, pos)
			}
			lexemes = append(lexemes, Lexeme{
				Kind:  LexInteger,
				Text:  text,
				Value: value,
				Pos:   pos,
			})

		case isSpace(ch):
			// Whitespace produces no lexeme, except that each newline is
			// emitted as a first-class lexeme: the grammar terminates
			// return statements on it.
			if ch == '\n' {
				lexemes = append(lexemes, Lexeme{
					Kind: LexNewline,
					Text: "\n",
					Pos:  Position{Line: l.line, Column: l.col, Length: 1},
				})
			}
			l.advance()

		default:
			// Single-character fallback: fixed punctuation or failure.
			pos := Position{Line: l.line, Column: l.col, Length: 1}
			text := l.input[l.pos : l.pos+1]
			l.advance()
			kind, ok := punctuation[ch]
			if !ok {
				return nil, unrecognisedToken(text, pos)
			}
			lexemes = append(lexemes, Lexeme{Kind: kind, Text: text, Pos: pos})
		}
	}

	return lexemes, nil
}

// advance consumes one byte, keeping the line/column cursor current.
func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	l.pos++
}

func unrecognisedToken(text string, pos Position) *Error {
	return ErrorAt(StageLexical, pos, "an unrecognised token was encountered: %q", text)
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
