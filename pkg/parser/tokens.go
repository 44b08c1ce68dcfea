package parser

// TokenType tags a lexical token. Keyword tags are spelled exactly like the
// reserved word they match.
type TokenType string

const (
	TokenSet      TokenType = "set"
	TokenAdd      TokenType = "add"
	TokenSubtract TokenType = "subtract"
	TokenMultiply TokenType = "multiply"
	TokenShow     TokenType = "show"
	TokenPrint    TokenType = "print"
	TokenIf       TokenType = "if"
	TokenThen     TokenType = "then"
	TokenIs       TokenType = "is"
	TokenGreater  TokenType = "greater"
	TokenLess     TokenType = "less"
	TokenEqual    TokenType = "equal"
	TokenTo       TokenType = "to"
	TokenBy       TokenType = "by"
	TokenOn       TokenType = "on"
	TokenScreen   TokenType = "screen"
	TokenFrom     TokenType = "from"
	TokenThan     TokenType = "than"
	TokenThe      TokenType = "the"
	TokenCount    TokenType = "count"
	TokenDisplay  TokenType = "display"
	TokenResult   TokenType = "result"
	TokenAnd      TokenType = "and"
	TokenWhen     TokenType = "when"
	TokenYou      TokenType = "you"
	TokenAre      TokenType = "are"
	TokenDone     TokenType = "done"

	TokenIdentifier TokenType = "IDENT"
	TokenInteger    TokenType = "INT"
	TokenString     TokenType = "STRING"
	TokenPeriod     TokenType = "."
)

// keywords maps reserved spellings to their token type.
var keywords = map[string]TokenType{}

func init() {
	for _, kw := range []TokenType{
		TokenSet, TokenAdd, TokenSubtract, TokenMultiply, TokenShow, TokenPrint,
		TokenIf, TokenThen, TokenIs, TokenGreater, TokenLess, TokenEqual,
		TokenTo, TokenBy, TokenOn, TokenScreen, TokenFrom, TokenThan, TokenThe,
		TokenCount, TokenDisplay, TokenResult, TokenAnd, TokenWhen, TokenYou,
		TokenAre, TokenDone,
	} {
		keywords[string(kw)] = kw
	}
}

// IsKeyword reports whether word is reserved.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Token is one lexical unit. Text is only meaningful for identifiers,
// integers and strings; string text keeps its surrounding quotes.
type Token struct {
	Type TokenType
	Text string
}

func (t Token) String() string {
	switch t.Type {
	case TokenIdentifier, TokenInteger, TokenString:
		return string(t.Type) + "(" + t.Text + ")"
	default:
		return string(t.Type)
	}
}

func keyword(tt TokenType) Token {
	return Token{Type: tt, Text: string(tt)}
}
