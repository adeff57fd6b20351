package compiler

import "testing"

func TestLookupPrimitiveType(t *testing.T) {
	tests := []struct {
		name string
		want PrimitiveType
		ok   bool
	}{
		{"void", TypeVoid, true},
		{"int", TypeInt, true},
		{"float", TypeVoid, false},
		{"Int", TypeVoid, false},
		{"", TypeVoid, false},
	}

	for _, tc := range tests {
		got, ok := LookupPrimitiveType(tc.name)
		if ok != tc.ok {
			t.Errorf("LookupPrimitiveType(%q) ok = %v, want %v", tc.name, ok, tc.ok)
		}
		if got != tc.want {
			t.Errorf("LookupPrimitiveType(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPrimitiveTypeFromNameDiagnostic(t *testing.T) {
	pos := Position{Line: 3, Column: 8, Length: 6}
	_, err := PrimitiveTypeFromName("string", pos)
	if err == nil {
		t.Fatal("expected a diagnostic for an unknown type spelling")
	}
	if err.Stage != StageSyntax {
		t.Errorf("stage = %v, want syntax", err.Stage)
	}
	if err.Pos != pos {
		t.Errorf("pos = %+v, want %+v", err.Pos, pos)
	}
}

func TestIntLiteralEvaluation(t *testing.T) {
	lit := &IntLiteral{Value: 41}
	if lit.EvaluatedType() != TypeInt {
		t.Errorf("evaluated type = %v, want int", lit.EvaluatedType())
	}
	if lit.Evaluate() != 41 {
		t.Errorf("evaluated value = %d, want 41", lit.Evaluate())
	}
}
