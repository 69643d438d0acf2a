package migraine

type Token struct {
	Kind TokenKind
	Text string
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenIdentifier
	TokenOperator
	TokenSymbol
	TokenTerminator
	TokenWhitespace
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenIdentifier:
		return "identifier"
	case TokenOperator:
		return "operator"
	case TokenSymbol:
		return "symbol"
	case TokenTerminator:
		return "terminator"
	case TokenWhitespace:
		return "whitespace"
	}
	return "invalid"
}

func (t Token) String() string {
	return t.Kind.String() + " '" + t.Text + "'"
}
