// Package dist serializes parsed syntax trees for later compiler
// stages. The wire format is canonical CBOR, so equal trees always
// encode to equal bytes.
package dist

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/shadow-lang/sdw/compiler"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("dist: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// CBOR cannot round-trip Go interface values, so statements and
// expressions are flattened into kind-tagged wire structs. Source
// positions are not carried: consumers of the wire form are past the
// diagnostic stage.

type wireRoot struct {
	Statements []wireStmt `cbor:"stmts"`
}

type wireStmt struct {
	Kind     string        `cbor:"kind"` // "return" or "fn"
	Return   *wireReturn   `cbor:"ret,omitempty"`
	Function *wireFunction `cbor:"fn,omitempty"`
}

type wireReturn struct {
	Value *wireExpr `cbor:"val,omitempty"`
}

type wireExpr struct {
	Kind string `cbor:"kind"` // "int"
	Int  int64  `cbor:"int"`
}

type wireFunction struct {
	Name       string      `cbor:"name"`
	ReturnType string      `cbor:"type"`
	Params     []wireParam `cbor:"params,omitempty"`
	Body       []wireStmt  `cbor:"body,omitempty"`
}

type wireParam struct {
	Type string `cbor:"type"`
	Name string `cbor:"name"`
}

// MarshalRoot serializes a Root to canonical CBOR bytes.
func MarshalRoot(root *compiler.Root) ([]byte, error) {
	wire, err := rootToWire(root)
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(wire)
}

// UnmarshalRoot deserializes a Root from CBOR bytes.
func UnmarshalRoot(data []byte) (*compiler.Root, error) {
	var wire wireRoot
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("dist: unmarshal root: %w", err)
	}
	return rootFromWire(&wire)
}

// --- AST → wire ---

func rootToWire(root *compiler.Root) (*wireRoot, error) {
	stmts, err := stmtsToWire(root.Statements)
	if err != nil {
		return nil, err
	}
	return &wireRoot{Statements: stmts}, nil
}

func stmtsToWire(stmts []compiler.Stmt) ([]wireStmt, error) {
	var out []wireStmt
	for _, stmt := range stmts {
		ws, err := stmtToWire(stmt)
		if err != nil {
			return nil, err
		}
		out = append(out, ws)
	}
	return out, nil
}

func stmtToWire(stmt compiler.Stmt) (wireStmt, error) {
	switch s := stmt.(type) {
	case *compiler.ReturnStmt:
		ret := &wireReturn{}
		if s.Value != nil {
			we, err := exprToWire(s.Value)
			if err != nil {
				return wireStmt{}, err
			}
			ret.Value = we
		}
		return wireStmt{Kind: "return", Return: ret}, nil

	case *compiler.Function:
		fn := &wireFunction{
			Name:       s.Name,
			ReturnType: s.ReturnType.String(),
		}
		for _, param := range s.Params {
			fn.Params = append(fn.Params, wireParam{Type: param.Type.String(), Name: param.Name})
		}
		if s.Body != nil {
			body, err := stmtsToWire(s.Body.Statements)
			if err != nil {
				return wireStmt{}, err
			}
			fn.Body = body
		}
		return wireStmt{Kind: "fn", Function: fn}, nil

	default:
		return wireStmt{}, fmt.Errorf("dist: unsupported statement type %T", stmt)
	}
}

func exprToWire(expr compiler.Expr) (*wireExpr, error) {
	switch e := expr.(type) {
	case *compiler.IntLiteral:
		return &wireExpr{Kind: "int", Int: e.Value}, nil
	default:
		return nil, fmt.Errorf("dist: unsupported expression type %T", expr)
	}
}

// --- wire → AST ---

func rootFromWire(wire *wireRoot) (*compiler.Root, error) {
	stmts, err := stmtsFromWire(wire.Statements)
	if err != nil {
		return nil, err
	}
	return &compiler.Root{Statements: stmts}, nil
}

func stmtsFromWire(wire []wireStmt) ([]compiler.Stmt, error) {
	var out []compiler.Stmt
	for _, ws := range wire {
		stmt, err := stmtFromWire(ws)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}

func stmtFromWire(ws wireStmt) (compiler.Stmt, error) {
	switch ws.Kind {
	case "return":
		ret := &compiler.ReturnStmt{}
		if ws.Return != nil && ws.Return.Value != nil {
			expr, err := exprFromWire(ws.Return.Value)
			if err != nil {
				return nil, err
			}
			ret.Value = expr
		}
		return ret, nil

	case "fn":
		if ws.Function == nil {
			return nil, fmt.Errorf("dist: fn statement without function payload")
		}
		returnType, ok := compiler.LookupPrimitiveType(ws.Function.ReturnType)
		if !ok {
			return nil, fmt.Errorf("dist: unknown primitive type %q", ws.Function.ReturnType)
		}
		fn := &compiler.Function{
			Name:       ws.Function.Name,
			ReturnType: returnType,
			Body:       &compiler.Block{},
		}
		for _, wp := range ws.Function.Params {
			paramType, ok := compiler.LookupPrimitiveType(wp.Type)
			if !ok {
				return nil, fmt.Errorf("dist: unknown primitive type %q", wp.Type)
			}
			fn.Params = append(fn.Params, compiler.Parameter{Type: paramType, Name: wp.Name})
		}
		body, err := stmtsFromWire(ws.Function.Body)
		if err != nil {
			return nil, err
		}
		fn.Body.Statements = body
		return fn, nil

	default:
		return nil, fmt.Errorf("dist: unknown statement kind %q", ws.Kind)
	}
}

func exprFromWire(we *wireExpr) (compiler.Expr, error) {
	switch we.Kind {
	case "int":
		return &compiler.IntLiteral{Value: we.Int}, nil
	default:
		return nil, fmt.Errorf("dist: unknown expression kind %q", we.Kind)
	}
}
