package compiler

// ---------------------------------------------------------------------------
// AST: Abstract syntax tree for Shadow
// ---------------------------------------------------------------------------

// Position describes a contiguous span of source text. Line and Column
// are zero-based; diagnostics add 1 when rendering for humans.
type Position struct {
	Line   int
	Column int
	Length int
}

// PrimitiveType is one of the fixed built-in value types.
type PrimitiveType int

const (
	TypeVoid PrimitiveType = iota
	TypeInt
)

var primitiveNames = map[PrimitiveType]string{
	TypeVoid: "void",
	TypeInt:  "int",
}

func (t PrimitiveType) String() string {
	if name, ok := primitiveNames[t]; ok {
		return name
	}
	return "void"
}

// LookupPrimitiveType resolves a type spelling to its PrimitiveType.
func LookupPrimitiveType(name string) (PrimitiveType, bool) {
	switch name {
	case "void":
		return TypeVoid, true
	case "int":
		return TypeInt, true
	}
	return TypeVoid, false
}

// PrimitiveTypeFromName resolves a type spelling, reporting any other
// spelling as a diagnostic. Custom types are rejected, not deferred.
func PrimitiveTypeFromName(name string, pos Position) (PrimitiveType, *Error) {
	if t, ok := LookupPrimitiveType(name); ok {
		return t, nil
	}
	return TypeVoid, ErrorAt(StageSyntax, pos, "custom types are not implemented yet (given %q)", name)
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	stmt() // marker method
}

// Expr is the interface for expression nodes. Expressions in the
// current grammar are constant, so they can be folded with no
// environment.
type Expr interface {
	EvaluatedType() PrimitiveType
	Evaluate() int64
	expr() // marker method
}

// IntLiteral represents an integer literal expression.
type IntLiteral struct {
	Value int64
	Pos   Position
}

func (n *IntLiteral) EvaluatedType() PrimitiveType { return TypeInt }
func (n *IntLiteral) Evaluate() int64              { return n.Value }
func (n *IntLiteral) expr()                        {}

// ReturnStmt represents a return statement. Value is nil for a bare
// return.
type ReturnStmt struct {
	Value Expr
	Pos   Position
}

func (n *ReturnStmt) stmt() {}

// Parameter is a single function parameter.
type Parameter struct {
	Type PrimitiveType
	Name string
}

// Block is a braced statement list.
type Block struct {
	Statements []Stmt
}

// Function represents a function declaration. Functions are statements,
// so declarations nest wherever a statement is permitted.
type Function struct {
	Name       string
	ReturnType PrimitiveType
	Params     []Parameter
	Body       *Block
	Pos        Position
}

func (n *Function) stmt() {}

// Root is the top-level compilation unit.
type Root struct {
	Statements []Stmt
}
