package parser

import "github.com/Alanissocool/plain-lang/pkg/ast"

// Options adjusts parsing behaviour.
type Options struct {
	// StrictLexing rejects lines containing input the tokenizer would
	// otherwise drop.
	StrictLexing bool
}

// Parse turns one source line into exactly one statement tree.
func Parse(line string) (ast.Statement, error) {
	return ParseWithOptions(line, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(line string, opts Options) (ast.Statement, error) {
	tokens, dropped := Scan(line)
	if opts.StrictLexing {
		if err := RejectUnrecognized(dropped); err != nil {
			return nil, err
		}
	}
	return ParseTokens(tokens)
}

// RejectUnrecognized turns the first dropped run into a parse error.
func RejectUnrecognized(dropped []Unrecognized) error {
	if len(dropped) == 0 {
		return nil
	}
	return parseErrorf("unrecognized input %q", dropped[0].Text)
}

// ParseTokens parses an already tokenized line.
func ParseTokens(tokens []Token) (ast.Statement, error) {
	if len(tokens) == 0 {
		return nil, errEmptyLine
	}
	p := &parser{tokens: tokens}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	p.accept(TokenPeriod)
	if !p.atEnd() {
		return nil, errExtraTokens
	}
	return stmt, nil
}

// parser walks a token slice with a single cursor. One token of lookahead
// is enough for the grammar, so it never backtracks.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the current token type, or "" past the end.
func (p *parser) peek() TokenType {
	if p.atEnd() {
		return ""
	}
	return p.tokens[p.pos].Type
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// accept consumes the current token when it has type tt.
func (p *parser) accept(tt TokenType) bool {
	if p.peek() == tt {
		p.pos++
		return true
	}
	return false
}

// expect consumes a required keyword.
func (p *parser) expect(tt TokenType) error {
	if p.atEnd() {
		return errUnexpectedEnd
	}
	if !p.accept(tt) {
		return parseErrorf("expected '%s'", tt)
	}
	return nil
}

// skipArticle drops an optional "the".
func (p *parser) skipArticle() {
	p.accept(TokenThe)
}

func (p *parser) expectIdentifier() (string, error) {
	if p.atEnd() {
		return "", errUnexpectedEnd
	}
	if p.peek() != TokenIdentifier {
		return "", parseErrorf("expected identifier")
	}
	return p.next().Text, nil
}
