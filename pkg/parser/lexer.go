package parser

import "unicode/utf8"

// Unrecognized is a run of input the tokenizer could not match and dropped.
type Unrecognized struct {
	Offset int
	Text   string
}

// lexer holds the state for a single pass over one source line.
type lexer struct {
	src     string
	pos     int
	tokens  []Token
	dropped []Unrecognized
}

// Tokenize converts line into tokens, silently dropping anything that
// matches no rule.
func Tokenize(line string) []Token {
	tokens, _ := Scan(line)
	return tokens
}

// Scan is Tokenize that also reports the dropped input, one entry per
// maximal run of unmatched bytes.
func Scan(line string) ([]Token, []Unrecognized) {
	l := &lexer{src: line}
	l.run()
	return l.tokens, l.dropped
}

func (l *lexer) run() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case isSpace(c):
			l.pos++
		case isIdentStart(c):
			l.scanWord()
		case isDigit(c):
			l.scanInteger()
		case c == '"':
			if !l.scanString() {
				l.drop(1)
			}
		case c == '.':
			l.emit(keyword(TokenPeriod))
			l.pos++
		default:
			_, width := utf8.DecodeRuneInString(l.src[l.pos:])
			l.drop(width)
		}
	}
}

func (l *lexer) emit(tok Token) {
	l.tokens = append(l.tokens, tok)
}

// drop skips width bytes, merging with the previous dropped run when the two
// are adjacent.
func (l *lexer) drop(width int) {
	start := l.pos
	l.pos += width
	if n := len(l.dropped); n > 0 {
		last := &l.dropped[n-1]
		if last.Offset+len(last.Text) == start {
			last.Text = l.src[last.Offset:l.pos]
			return
		}
	}
	l.dropped = append(l.dropped, Unrecognized{Offset: start, Text: l.src[start:l.pos]})
}

// scanWord reads a whole identifier run first so that reserved words only
// match when nothing longer does ("settle" is an identifier).
func (l *lexer) scanWord() {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	word := l.src[start:l.pos]
	if kw, ok := keywords[word]; ok {
		l.emit(keyword(kw))
		return
	}
	l.emit(Token{Type: TokenIdentifier, Text: word})
}

func (l *lexer) scanInteger() {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	l.emit(Token{Type: TokenInteger, Text: l.src[start:l.pos]})
}

// scanString consumes a quoted literal. It reports false, consuming nothing,
// when the closing quote is missing.
func (l *lexer) scanString() bool {
	for end := l.pos + 1; end < len(l.src); end++ {
		if l.src[end] == '"' {
			l.emit(Token{Type: TokenString, Text: l.src[l.pos : end+1]})
			l.pos = end + 1
			return true
		}
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
