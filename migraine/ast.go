package migraine

// Node is a parsed program element. The set of implementations is closed.
type Node interface {
	node()
}

type Number struct {
	Value float64
}

type Identifier struct {
	Name string
}

type UnaryMinus struct {
	Operand Node
}

// Operation is a left-associative chain: Left Rest[0].Operator Rest[0].Operand ...
type Operation struct {
	Left Node
	Rest []Operand
}

type Operand struct {
	Operator byte // one of + - * /
	Operand  Node
}

type Assignment struct {
	Name       string
	Expression Node
}

type Block struct {
	Expressions []Node
}

type FunctionDefinition struct {
	Name       string
	Parameters []string
	Body       *Block
}

type FunctionCall struct {
	Name      string
	Arguments []Node
}

type ExpressionList struct {
	Expressions []Node
}

type IfStatement struct {
	Condition *Condition
	Body      *Block
}

// Condition compares Left and Right with Operator. With an empty Operator, Right is nil and the
// condition is the value of Left.
type Condition struct {
	Left     Node
	Operator string
	Right    Node
}

func (*Number) node()             {}
func (*Identifier) node()         {}
func (*UnaryMinus) node()         {}
func (*Operation) node()          {}
func (*Assignment) node()         {}
func (*Block) node()              {}
func (*FunctionDefinition) node() {}
func (*FunctionCall) node()       {}
func (*ExpressionList) node()     {}
func (*IfStatement) node()        {}
func (*Condition) node()          {}

var comparisonOperators = []string{"==", "<=", ">=", "<", ">"}

const (
	keywordFun = "fun"
	keywordIf  = "if"
)

func isKeyword(name string) bool {
	return name == keywordFun || name == keywordIf
}
