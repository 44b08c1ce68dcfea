package parser

import "github.com/Alanissocool/plain-lang/pkg/ast"

// parseStatement parses one statement and any "then" continuations after
// it. Each continuation is parsed by a recursive call, so chains nest to the
// right: "a then b then c" is Seq(a, Seq(b, c)).
func (p *parser) parseStatement() (ast.Statement, error) {
	if p.atEnd() {
		return nil, errUnexpectedEnd
	}
	stmt, err := p.parsePrimaryStatement()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenThen) {
		if p.atEnd() {
			return nil, parseErrorf("expected statement after 'then'")
		}
		next, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt = ast.NewSequenceStatement(stmt, next)
	}
	return stmt, nil
}

func (p *parser) parsePrimaryStatement() (ast.Statement, error) {
	switch p.next().Type {
	case TokenSet:
		return p.parseSet()
	case TokenAdd:
		return p.parseAdd()
	case TokenSubtract:
		return p.parseSubtract()
	case TokenMultiply:
		return p.parseMultiply()
	case TokenShow:
		return p.parseShow()
	case TokenPrint:
		p.skipArticle()
		return p.parseShowValue()
	case TokenIf:
		return p.parseIf()
	case TokenCount:
		return p.parseCountLoop()
	case TokenDisplay:
		return p.parseDisplay()
	default:
		return nil, parseErrorf("unknown statement")
	}
}

// set [the] IDENT to EXPR
func (p *parser) parseSet() (ast.Statement, error) {
	p.skipArticle()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenTo); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewSetStatement(name, value), nil
}

// add EXPR to [the] IDENT
func (p *parser) parseAdd() (ast.Statement, error) {
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	target, err := p.parseTarget(TokenTo)
	if err != nil {
		return nil, err
	}
	return ast.NewArithmeticStatement(ast.ArithmeticAdd, target, value), nil
}

// subtract EXPR from [the] IDENT
func (p *parser) parseSubtract() (ast.Statement, error) {
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	target, err := p.parseTarget(TokenFrom)
	if err != nil {
		return nil, err
	}
	return ast.NewArithmeticStatement(ast.ArithmeticSubtract, target, value), nil
}

// parseTarget reads "<preposition> [the] IDENT".
func (p *parser) parseTarget(preposition TokenType) (string, error) {
	if err := p.expect(preposition); err != nil {
		return "", err
	}
	p.skipArticle()
	return p.expectIdentifier()
}

// multiply [the] IDENT by EXPR
func (p *parser) parseMultiply() (ast.Statement, error) {
	p.skipArticle()
	target, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenBy); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewArithmeticStatement(ast.ArithmeticMultiply, target, value), nil
}

// show [on [the] screen] [the] EXPR
func (p *parser) parseShow() (ast.Statement, error) {
	if p.accept(TokenOn) {
		p.skipArticle()
		if err := p.expect(TokenScreen); err != nil {
			return nil, err
		}
	}
	p.skipArticle()
	return p.parseShowValue()
}

func (p *parser) parseShowValue() (ast.Statement, error) {
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewShowStatement(value), nil
}

// display [the] EXPR [result]
func (p *parser) parseDisplay() (ast.Statement, error) {
	p.skipArticle()
	stmt, err := p.parseShowValue()
	if err != nil {
		return nil, err
	}
	p.accept(TokenResult)
	return stmt, nil
}

// if [the] EXPR then STMT
func (p *parser) parseIf() (ast.Statement, error) {
	p.skipArticle()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenThen); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewIfStatement(cond, then), nil
}

// count to EXPR <filler> STMT
//
// The filler ("and when you are done", or anything else) is skipped up to
// the first show or display keyword; the statement starting there is the
// body. Skipped tokens are not validated.
func (p *parser) parseCountLoop() (ast.Statement, error) {
	if err := p.expect(TokenTo); err != nil {
		return nil, err
	}
	count, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.peek() != TokenDisplay && p.peek() != TokenShow {
		p.pos++
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewCountLoop(count, body), nil
}
