package compiler

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Diagnostics: positioned, stage-tagged errors
// ---------------------------------------------------------------------------

// Stage identifies the compiler stage that produced a diagnostic.
type Stage int

const (
	StageLexical Stage = iota
	StageSyntax
)

var stageNames = map[Stage]string{
	StageLexical: "lexical",
	StageSyntax:  "syntax",
}

var stageTags = map[Stage]string{
	StageLexical: "L",
	StageSyntax:  "S",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", s)
}

// Tag returns the short stage tag used in diagnostic headers.
func (s Stage) Tag() string {
	if tag, ok := stageTags[s]; ok {
		return tag
	}
	return "?"
}

// Error is a positioned diagnostic. It satisfies the error interface;
// the lexer and parser fail fast with the first Error they produce.
type Error struct {
	Stage   Stage
	Message string
	Pos     Position
}

// NewError builds a diagnostic from explicit position fields.
func NewError(stage Stage, line, column, length int, format string, args ...any) *Error {
	return &Error{
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
		Pos:     Position{Line: line, Column: column, Length: length},
	}
}

// ErrorAt builds a diagnostic at an existing span.
func ErrorAt(stage Stage, pos Position, format string, args ...any) *Error {
	return &Error{
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

// Error renders the diagnostic header: stage tag, message, and a
// 1-based line/column restatement of the stored zero-based position.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[sdw E/%s] %s error\n", e.Stage.Tag(), e.Stage)
	sb.WriteString(e.Message)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "error occurred at line %d, character %d.", e.Pos.Line+1, e.Pos.Column+1)
	return sb.String()
}

// Excerpt renders the offending source line with a caret span beneath
// the diagnostic's position.
//
// It panics if the recorded line does not exist in source: that means
// the diagnostic was built against a different buffer, which is a bug
// in the diagnostic pipeline rather than a user error.
func (e *Error) Excerpt(source string) string {
	lines := strings.Split(source, "\n")
	if e.Pos.Line >= len(lines) {
		panic(fmt.Sprintf("diagnostic points at line %d but the source has only %d lines", e.Pos.Line+1, len(lines)))
	}

	var sb strings.Builder
	sb.WriteString("[ .. ]\n")
	sb.WriteString(lines[e.Pos.Line])
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", e.Pos.Column))
	sb.WriteString(strings.Repeat("^", e.Pos.Length))
	sb.WriteString(" - error occurred here!\n")
	sb.WriteString("[ .. ]")
	return sb.String()
}

// Render formats the complete user-facing diagnostic block: header
// plus source excerpt. Output depends only on the inputs.
func Render(e *Error, source string) string {
	return e.Error() + "\n" + e.Excerpt(source)
}
