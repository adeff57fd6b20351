package compiler

import (
	"testing"
)

func TestLexPunctuation(t *testing.T) {
	input := `( ) { } ; ,`
	expected := []LexemeKind{
		LexOpenParen,
		LexCloseParen,
		LexOpenBrace,
		LexCloseBrace,
		LexSemicolon,
		LexDelimiter,
	}

	lexemes, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	if len(lexemes) != len(expected) {
		t.Fatalf("lexeme count = %d, want %d", len(lexemes), len(expected))
	}
	for i, kind := range expected {
		if lexemes[i].Kind != kind {
			t.Errorf("lexeme[%d] kind = %v, want %v", i, lexemes[i].Kind, kind)
		}
	}
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	lexemes, err := Lex("fn return main fnx returns")
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}

	expected := []struct {
		kind LexemeKind
		text string
	}{
		{LexFn, "fn"},
		{LexReturn, "return"},
		{LexIdentifier, "main"},
		{LexIdentifier, "fnx"},
		{LexIdentifier, "returns"},
	}
	if len(lexemes) != len(expected) {
		t.Fatalf("lexeme count = %d, want %d", len(lexemes), len(expected))
	}
	for i, exp := range expected {
		if lexemes[i].Kind != exp.kind {
			t.Errorf("lexeme[%d] kind = %v, want %v", i, lexemes[i].Kind, exp.kind)
		}
		if lexemes[i].Text != exp.text {
			t.Errorf("lexeme[%d] text = %q, want %q", i, lexemes[i].Text, exp.text)
		}
	}
}

func TestLexIntegers(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"42", 42},
		{"9223372036854775807", 9223372036854775807},
	}

	for _, tc := range tests {
		lexemes, err := Lex(tc.input)
		if err != nil {
			t.Fatalf("Lex(%q) error: %v", tc.input, err)
		}
		if len(lexemes) != 1 {
			t.Fatalf("Lex(%q): lexeme count = %d, want 1", tc.input, len(lexemes))
		}
		if lexemes[0].Kind != LexInteger {
			t.Errorf("Lex(%q): kind = %v, want INTEGER", tc.input, lexemes[0].Kind)
		}
		if lexemes[0].Value != tc.want {
			t.Errorf("Lex(%q): value = %d, want %d", tc.input, lexemes[0].Value, tc.want)
		}
	}
}

func TestLexIntegerOverflow(t *testing.T) {
	// One past the largest signed 64-bit value.
	_, err := Lex("9223372036854775808")
	if err == nil {
		t.Fatal("expected a lexical error for an overflowing literal")
	}
	if err.Stage != StageLexical {
		t.Errorf("stage = %v, want lexical", err.Stage)
	}
	want := Position{Line: 0, Column: 0, Length: 19}
	if err.Pos != want {
		t.Errorf("pos = %+v, want %+v", err.Pos, want)
	}
}

func TestLexNewlines(t *testing.T) {
	lexemes, err := Lex("fn\nreturn")
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}

	expected := []struct {
		kind LexemeKind
		pos  Position
	}{
		{LexFn, Position{Line: 0, Column: 0, Length: 2}},
		{LexNewline, Position{Line: 0, Column: 2, Length: 1}},
		{LexReturn, Position{Line: 1, Column: 0, Length: 6}},
	}
	if len(lexemes) != len(expected) {
		t.Fatalf("lexeme count = %d, want %d", len(lexemes), len(expected))
	}
	for i, exp := range expected {
		if lexemes[i].Kind != exp.kind {
			t.Errorf("lexeme[%d] kind = %v, want %v", i, lexemes[i].Kind, exp.kind)
		}
		if lexemes[i].Pos != exp.pos {
			t.Errorf("lexeme[%d] pos = %+v, want %+v", i, lexemes[i].Pos, exp.pos)
		}
	}
}

func TestLexMinimalProgramPositions(t *testing.T) {
	input := "fn int main() {\n\treturn 0\n}\n"
	lexemes, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}

	want := []struct {
		kind LexemeKind
		pos  Position
	}{
		{LexFn, Position{0, 0, 2}},
		{LexIdentifier, Position{0, 3, 3}},
		{LexIdentifier, Position{0, 7, 4}},
		{LexOpenParen, Position{0, 11, 1}},
		{LexCloseParen, Position{0, 12, 1}},
		{LexOpenBrace, Position{0, 14, 1}},
		{LexNewline, Position{0, 15, 1}},
		{LexReturn, Position{1, 1, 6}},
		{LexInteger, Position{1, 8, 1}},
		{LexNewline, Position{1, 9, 1}},
		{LexCloseBrace, Position{2, 0, 1}},
		{LexNewline, Position{2, 1, 1}},
	}
	if len(lexemes) != len(want) {
		t.Fatalf("lexeme count = %d, want %d", len(lexemes), len(want))
	}
	for i, exp := range want {
		if lexemes[i].Kind != exp.kind {
			t.Errorf("lexeme[%d] kind = %v, want %v", i, lexemes[i].Kind, exp.kind)
		}
		if lexemes[i].Pos != exp.pos {
			t.Errorf("lexeme[%d] (%v) pos = %+v, want %+v", i, lexemes[i].Kind, lexemes[i].Pos, exp.pos)
		}
	}
}

func kinds(lexemes []Lexeme) []LexemeKind {
	out := make([]LexemeKind, len(lexemes))
	for i, lex := range lexemes {
		out[i] = lex.Kind
	}
	return out
}

func TestLexWhitespaceInvariance(t *testing.T) {
	// Extra spaces and tabs between lexemes change positions only, not
	// the kind sequence. Newlines are excluded: they are lexemes.
	compact := "fn int main() {\n\treturn 0\n}\n"
	spaced := "fn\t int   main ( )  {\n\t\t return \t 0\n  }  \n"

	a, err := Lex(compact)
	if err != nil {
		t.Fatalf("Lex(compact) error: %v", err)
	}
	b, err := Lex(spaced)
	if err != nil {
		t.Fatalf("Lex(spaced) error: %v", err)
	}

	ka, kb := kinds(a), kinds(b)
	if len(ka) != len(kb) {
		t.Fatalf("kind sequence lengths differ: %d vs %d", len(ka), len(kb))
	}
	for i := range ka {
		if ka[i] != kb[i] {
			t.Errorf("kind[%d]: %v vs %v", i, ka[i], kb[i])
		}
	}
}

func TestLexPositionMonotonicity(t *testing.T) {
	input := "fn void f(int a, int b) {\n\treturn\n}\nfn int g() {\n\treturn 7\n}\n"
	lexemes, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}

	for i := 1; i < len(lexemes); i++ {
		prev, cur := lexemes[i-1].Pos, lexemes[i].Pos
		if cur.Line < prev.Line || (cur.Line == prev.Line && cur.Column < prev.Column) {
			t.Errorf("lexeme[%d] at %+v precedes lexeme[%d] at %+v", i, cur, i-1, prev)
		}
	}
}

func TestLexUnrecognisedToken(t *testing.T) {
	lexemes, err := Lex("fn int ma@n")
	if err == nil {
		t.Fatalf("expected a lexical error, got %d lexemes", len(lexemes))
	}
	if lexemes != nil {
		t.Errorf("expected no lexemes alongside the error")
	}
	if err.Stage != StageLexical {
		t.Errorf("stage = %v, want lexical", err.Stage)
	}
	want := Position{Line: 0, Column: 9, Length: 1}
	if err.Pos != want {
		t.Errorf("pos = %+v, want %+v", err.Pos, want)
	}
}

func TestLexUnrecognisedTokenOnLaterLine(t *testing.T) {
	_, err := Lex("fn int main() {\nreturn @ 0\n}\n")
	if err == nil {
		t.Fatal("expected a lexical error")
	}
	want := Position{Line: 1, Column: 7, Length: 1}
	if err.Pos != want {
		t.Errorf("pos = %+v, want %+v", err.Pos, want)
	}
}

func TestLexEmptyInput(t *testing.T) {
	lexemes, err := Lex("")
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	if len(lexemes) != 0 {
		t.Errorf("lexeme count = %d, want 0", len(lexemes))
	}
}
