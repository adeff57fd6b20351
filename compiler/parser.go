package compiler

// ---------------------------------------------------------------------------
// Parser: recursive descent over the lexeme sequence
// ---------------------------------------------------------------------------

// Parser consumes a lexeme sequence front to back, building the AST.
// Every rule is built from the expect primitive plus front peeking;
// there is no multi-token lookahead and no backtracking.
type Parser struct {
	lexemes []Lexeme
	last    Position // span of the most recently consumed lexeme
}

// Parse builds a Root from the given lexeme sequence. The first
// grammar violation aborts the parse and is returned as the only
// error.
func Parse(lexemes []Lexeme) (*Root, *Error) {
	p := &Parser{lexemes: lexemes}
	return p.parseRoot()
}

// front peeks at the next lexeme without consuming it.
func (p *Parser) front() (Lexeme, bool) {
	if len(p.lexemes) == 0 {
		return Lexeme{}, false
	}
	return p.lexemes[0], true
}

// pop consumes the front lexeme. The caller must have peeked first.
func (p *Parser) pop() Lexeme {
	lex := p.lexemes[0]
	p.lexemes = p.lexemes[1:]
	p.last = lex.Pos
	return lex
}

// eofPos is the position one past the end of the last consumed lexeme,
// used for unexpected-EOF diagnostics.
func (p *Parser) eofPos() Position {
	return Position{Line: p.last.Line, Column: p.last.Column + p.last.Length, Length: 1}
}

// expect pops the front lexeme if it matches kind. It fails on an
// empty queue and on a kind mismatch; on success the returned lexeme
// carries any identifier text or literal value for the caller.
func (p *Parser) expect(kind LexemeKind) (Lexeme, *Error) {
	front, ok := p.front()
	if !ok {
		return Lexeme{}, ErrorAt(StageSyntax, p.eofPos(), "unexpected end of input, expected %s", kind)
	}
	if front.Kind != kind {
		return Lexeme{}, ErrorAt(StageSyntax, front.Pos, "expected %s, got %s", kind, front.Kind)
	}
	return p.pop(), nil
}

// parseRoot parses statements until the input ends or an unexpected
// closing brace is reached.
func (p *Parser) parseRoot() (*Root, *Error) {
	root := &Root{}
	for {
		front, ok := p.front()
		if !ok || front.Kind == LexCloseBrace {
			break
		}
		if front.Kind == LexNewline {
			p.pop()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		root.Statements = append(root.Statements, stmt)
	}
	return root, nil
}

// parseStatement dispatches on the front lexeme's kind.
func (p *Parser) parseStatement() (Stmt, *Error) {
	front, ok := p.front()
	if !ok {
		return nil, ErrorAt(StageSyntax, p.eofPos(), "unexpected end of input, expected a statement")
	}
	switch front.Kind {
	case LexFn:
		return p.parseFunction()
	case LexReturn:
		return p.parseReturn()
	default:
		return nil, ErrorAt(StageSyntax, front.Pos,
			"%s cannot begin a statement: only fn and return are implemented", front.Kind)
	}
}

// parseReturn parses "return" Expression? NEWLINE. A newline directly
// after the keyword makes the return value-less.
func (p *Parser) parseReturn() (*ReturnStmt, *Error) {
	kw, err := p.expect(LexReturn)
	if err != nil {
		return nil, err
	}
	stmt := &ReturnStmt{Pos: kw.Pos}

	front, ok := p.front()
	if !ok {
		return nil, ErrorAt(StageSyntax, p.eofPos(), "unexpected end of input in return statement")
	}
	if front.Kind != LexNewline {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Value = expr
	}
	if _, err := p.expect(LexNewline); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseExpression parses an expression. Only integer literals exist in
// the current grammar.
func (p *Parser) parseExpression() (Expr, *Error) {
	front, ok := p.front()
	if !ok {
		return nil, ErrorAt(StageSyntax, p.eofPos(), "unexpected end of input, expected an expression")
	}
	if front.Kind != LexInteger {
		return nil, ErrorAt(StageSyntax, front.Pos,
			"only literal expressions are supported for now (got %s)", front.Kind)
	}
	lit := p.pop()
	return &IntLiteral{Value: lit.Value, Pos: lit.Pos}, nil
}

// parseParameter parses a type name followed by a parameter name.
func (p *Parser) parseParameter() (Parameter, *Error) {
	typeName, err := p.expect(LexIdentifier)
	if err != nil {
		return Parameter{}, err
	}
	paramType, err := PrimitiveTypeFromName(typeName.Text, typeName.Pos)
	if err != nil {
		return Parameter{}, err
	}
	name, err := p.expect(LexIdentifier)
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{Type: paramType, Name: name.Text}, nil
}

// parseFunction parses "fn" type-name fn-name "(" params ")" Block.
func (p *Parser) parseFunction() (*Function, *Error) {
	kw, err := p.expect(LexFn)
	if err != nil {
		return nil, err
	}
	typeName, err := p.expect(LexIdentifier)
	if err != nil {
		return nil, err
	}
	returnType, err := PrimitiveTypeFromName(typeName.Text, typeName.Pos)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(LexIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LexOpenParen); err != nil {
		return nil, err
	}

	fn := &Function{Name: name.Text, ReturnType: returnType, Pos: kw.Pos}

	// Parameters are delimiter-separated. After each parameter a
	// missing delimiter ends the loop, so a trailing parameter needs
	// no trailing delimiter; an omitted one between parameters then
	// fails the closing-paren check below.
	if front, ok := p.front(); ok && front.Kind != LexCloseParen {
		for len(p.lexemes) > 0 {
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, param)

			if front, ok := p.front(); ok && front.Kind == LexDelimiter {
				p.pop()
			} else {
				break
			}
		}
	}

	if _, err := p.expect(LexCloseParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

// parseBlock parses "{" Statement* "}".
func (p *Parser) parseBlock() (*Block, *Error) {
	if _, err := p.expect(LexOpenBrace); err != nil {
		return nil, err
	}
	block := &Block{}
	for {
		front, ok := p.front()
		if !ok || front.Kind == LexCloseBrace {
			break
		}
		if front.Kind == LexNewline {
			p.pop()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(LexCloseBrace); err != nil {
		return nil, err
	}
	return block, nil
}
