package migraine

import (
	"errors"
	"slices"
	"strconv"
)

// Parse builds the program tree from tokens. Grammar, lowest precedence first:
//
//	ExpressionList     = { Expression [ ";" ] }
//	Expression         = FunctionDefinition | IfStatement | Assignment | Block | Operation
//	Assignment         = Identifier "=" Expression
//	Operation          = Term { ("+" | "-") Term }
//	Term               = Factor { ("*" | "/") Factor }
//	Factor             = "-" Factor | Number | FunctionCall | Identifier | "(" Expression ")"
//	FunctionDefinition = "fun" Identifier "(" [ Identifier { "," Identifier } ] ")" Block
//	IfStatement        = "if" "(" Condition ")" Block
//	Condition          = Expression [ ("==" | "<=" | ">=" | "<" | ">") Expression ]
//	Block              = "{" { Expression [ ";" ] } "}"
//	FunctionCall       = Identifier "(" [ Expression { "," Expression } ] ")"
//
// The ";" is mandatory after assignments and operations unless the input or the block ends there.
func Parse(tokens *TokenStream) (*ExpressionList, error) {
	p := &parser{
		tokens: tokens,
	}
	return p.parseExpressionList()
}

// ParseString lexes and parses src.
func ParseString(src string) (*ExpressionList, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

type parser struct {
	tokens *TokenStream
}

func (p *parser) fail(expected string) error {
	err := &ParseError{
		Expected: expected,
	}
	if t, err2 := p.tokens.Current(); err2 == nil {
		err.Found = t.Text
	}
	return WithPos(err, p.tokens.Pos())
}

func (p *parser) peekText(offset int, text string) bool {
	t, ok := p.tokens.LookAhead(offset)
	return ok && t.Text == text
}

func (p *parser) peekKind(offset int, kind TokenKind) bool {
	t, ok := p.tokens.LookAhead(offset)
	return ok && t.Kind == kind
}

func (p *parser) parseExpressionList() (*ExpressionList, error) {
	list := &ExpressionList{
		Expressions: []Node{},
	}
	for !p.tokens.IsEmpty() {
		expr, err := p.parseStatement("")
		if err != nil {
			return nil, err
		}
		list.Expressions = append(list.Expressions, expr)
	}
	return list, nil
}

// parseStatement parses one expression and its terminator. closing is the token that may end the
// enclosing sequence in place of a terminator.
func (p *parser) parseStatement(closing string) (Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.tokens.ConsumeKind(TokenTerminator) {
		return expr, nil
	}
	if needsTerminator(expr) &&
		!p.tokens.IsEmpty() &&
		(closing == "" || !p.peekText(0, closing)) {
		return nil, p.fail("';'")
	}
	return expr, nil
}

func needsTerminator(node Node) bool {
	switch node.(type) {
	case *Block, *FunctionDefinition, *IfStatement:
		return false
	}
	return true
}

func (p *parser) parseExpression() (Node, error) {
	switch {
	case p.peekText(0, keywordFun) && p.peekKind(0, TokenIdentifier):
		return p.parseFunctionDefinition()
	case p.peekText(0, keywordIf) && p.peekKind(0, TokenIdentifier):
		return p.parseIfStatement()
	case p.peekKind(0, TokenIdentifier) && p.peekText(1, "="):
		return p.parseAssignment()
	case p.peekText(0, "{"):
		return p.parseBlock()
	}
	return p.parseOperation()
}

func (p *parser) parseAssignment() (Node, error) {
	if err := p.tokens.ExpectKind(TokenIdentifier); err != nil {
		return nil, err
	}
	name := p.tokens.Consumed().Text
	if err := p.tokens.ExpectText("="); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assignment{
		Name:       name,
		Expression: expr,
	}, nil
}

func (p *parser) parseOperation() (Node, error) {
	return p.parseChain(p.parseTerm, "+", "-")
}

func (p *parser) parseTerm() (Node, error) {
	return p.parseChain(p.parseFactor, "*", "/")
}

// parseChain folds operand { operator operand } into one flat Operation
func (p *parser) parseChain(operand func() (Node, error), operators ...string) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	var rest []Operand
	for p.tokens.ConsumeAnyText(operators...) {
		op := p.tokens.Consumed().Text[0]
		right, err := operand()
		if err != nil {
			return nil, err
		}
		rest = append(rest, Operand{
			Operator: op,
			Operand:  right,
		})
	}

	if len(rest) == 0 {
		return left, nil
	}
	return &Operation{
		Left: left,
		Rest: rest,
	}, nil
}

func (p *parser) parseFactor() (Node, error) {
	if p.tokens.ConsumeText("-") {
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryMinus{
			Operand: operand,
		}, nil
	}

	pos := p.tokens.Pos()
	if p.tokens.ConsumeKind(TokenNumber) {
		text := p.tokens.Consumed().Text
		value, err := strconv.ParseFloat(text, 64)
		// out of range literals are +Inf
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, WithPos(&ParseError{
				Expected: "number",
				Found:    text,
			}, pos)
		}
		return &Number{
			Value: value,
		}, nil
	}

	if p.peekKind(0, TokenIdentifier) {
		t, _ := p.tokens.Current()
		if isKeyword(t.Text) {
			return nil, p.fail("operand")
		}
		if p.peekText(1, "(") {
			return p.parseFunctionCall()
		}
		p.tokens.Consume()
		return &Identifier{
			Name: t.Text,
		}, nil
	}

	if p.tokens.ConsumeText("(") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.tokens.ExpectText(")"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, p.fail("number, identifier or '('")
}

func (p *parser) parseFunctionCall() (Node, error) {
	if err := p.tokens.ExpectKind(TokenIdentifier); err != nil {
		return nil, err
	}
	call := &FunctionCall{
		Name:      p.tokens.Consumed().Text,
		Arguments: []Node{},
	}
	if err := p.tokens.ExpectText("("); err != nil {
		return nil, err
	}
	if p.tokens.ConsumeText(")") {
		return call, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Arguments = append(call.Arguments, arg)
		if p.tokens.ConsumeText(",") {
			continue
		}
		if err := p.tokens.ExpectText(")"); err != nil {
			return nil, err
		}
		return call, nil
	}
}

func (p *parser) parseFunctionDefinition() (Node, error) {
	if err := p.tokens.ExpectText(keywordFun); err != nil {
		return nil, err
	}
	if !p.peekKind(0, TokenIdentifier) || p.peekText(0, keywordFun) || p.peekText(0, keywordIf) {
		return nil, p.fail("function name")
	}
	p.tokens.Consume()
	def := &FunctionDefinition{
		Name:       p.tokens.Consumed().Text,
		Parameters: []string{},
	}

	if err := p.tokens.ExpectText("("); err != nil {
		return nil, err
	}
	if !p.tokens.ConsumeText(")") {
		for {
			if !p.peekKind(0, TokenIdentifier) {
				return nil, p.fail("parameter name")
			}
			pos := p.tokens.Pos()
			p.tokens.Consume()
			name := p.tokens.Consumed().Text
			if isKeyword(name) || slices.Contains(def.Parameters, name) {
				return nil, WithPos(&ParseError{
					Expected: "parameter name",
					Found:    name,
				}, pos)
			}
			def.Parameters = append(def.Parameters, name)
			if p.tokens.ConsumeText(",") {
				continue
			}
			if err := p.tokens.ExpectText(")"); err != nil {
				return nil, err
			}
			break
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	def.Body = body
	return def, nil
}

func (p *parser) parseIfStatement() (Node, error) {
	if err := p.tokens.ExpectText(keywordIf); err != nil {
		return nil, err
	}
	if err := p.tokens.ExpectText("("); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if err := p.tokens.ExpectText(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &IfStatement{
		Condition: cond,
		Body:      body,
	}, nil
}

func (p *parser) parseCondition() (*Condition, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	cond := &Condition{
		Left: left,
	}
	if p.tokens.ConsumeAnyText(comparisonOperators...) {
		cond.Operator = p.tokens.Consumed().Text
		cond.Right, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return cond, nil
}

func (p *parser) parseBlock() (*Block, error) {
	if err := p.tokens.ExpectText("{"); err != nil {
		return nil, err
	}
	block := &Block{
		Expressions: []Node{},
	}
	for !p.tokens.ConsumeText("}") {
		if p.tokens.IsEmpty() {
			return nil, p.fail("'}'")
		}
		expr, err := p.parseStatement("}")
		if err != nil {
			return nil, err
		}
		block.Expressions = append(block.Expressions, expr)
	}
	return block, nil
}
