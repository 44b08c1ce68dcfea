package parser

import (
	"strconv"

	"github.com/Alanissocool/plain-lang/pkg/ast"
)

// pronoun is the identifier spelling that refers to the last value.
const pronoun = "it"

// parseExpression parses an atom optionally followed by a single comparison.
// The right-hand side recurses, so chained comparisons associate right.
func (p *parser) parseExpression() (ast.Expression, error) {
	if p.atEnd() {
		return nil, errUnexpectedEnd
	}
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if !p.accept(TokenIs) {
		return left, nil
	}

	var op ast.ComparisonOperator
	var joiner TokenType
	switch p.peek() {
	case TokenGreater:
		op, joiner = ast.CompareGreater, TokenThan
	case TokenLess:
		op, joiner = ast.CompareLess, TokenThan
	case TokenEqual:
		op, joiner = ast.CompareEqual, TokenTo
	case "":
		return nil, errUnexpectedEnd
	default:
		return nil, parseErrorf("expected comparison")
	}
	p.pos++
	if err := p.expect(joiner); err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewComparisonExpression(op, left, right), nil
}

func (p *parser) parseAtom() (ast.Expression, error) {
	p.skipArticle()
	if p.atEnd() {
		return nil, errUnexpectedEnd
	}
	tok := p.tokens[p.pos]
	switch tok.Type {
	case TokenInteger:
		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, parseErrorf("integer literal out of range: %s", tok.Text)
		}
		p.pos++
		return ast.NewIntegerLiteral(value), nil
	case TokenString:
		p.pos++
		return ast.NewStringLiteral(tok.Text[1 : len(tok.Text)-1]), nil
	case TokenIdentifier:
		p.pos++
		if tok.Text == pronoun {
			return ast.NewLastValueReference(), nil
		}
		return ast.NewIdentifier(tok.Text), nil
	default:
		return nil, parseErrorf("unknown atom")
	}
}
