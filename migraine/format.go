package migraine

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a node as source text that parses back to an equivalent tree.
func Format(node Node) string {
	var sb strings.Builder
	format(&sb, node)
	return sb.String()
}

func format(sb *strings.Builder, node Node) {
	switch node := node.(type) {

	case *Number:
		sb.WriteString(strconv.FormatFloat(node.Value, 'f', -1, 64))

	case *Identifier:
		sb.WriteString(node.Name)

	case *UnaryMinus:
		sb.WriteString("-")
		formatOperand(sb, node.Operand)

	case *Operation:
		formatOperand(sb, node.Left)
		for _, rest := range node.Rest {
			sb.WriteString(" ")
			sb.WriteByte(rest.Operator)
			sb.WriteString(" ")
			formatOperand(sb, rest.Operand)
		}

	case *Assignment:
		sb.WriteString(node.Name)
		sb.WriteString(" = ")
		format(sb, node.Expression)

	case *Block:
		sb.WriteString("{ ")
		formatStatements(sb, node.Expressions)
		sb.WriteString(" }")

	case *FunctionDefinition:
		fmt.Fprintf(sb, "fun %s(%s) ", node.Name, strings.Join(node.Parameters, ", "))
		format(sb, node.Body)

	case *FunctionCall:
		sb.WriteString(node.Name)
		sb.WriteString("(")
		for i, arg := range node.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, arg)
		}
		sb.WriteString(")")

	case *ExpressionList:
		formatStatements(sb, node.Expressions)

	case *IfStatement:
		sb.WriteString("if (")
		format(sb, node.Condition)
		sb.WriteString(") ")
		format(sb, node.Body)

	case *Condition:
		format(sb, node.Left)
		if node.Operator != "" {
			sb.WriteString(" ")
			sb.WriteString(node.Operator)
			sb.WriteString(" ")
			format(sb, node.Right)
		}

	default:
		panic(fmt.Errorf("unknown node type %T", node))
	}
}

func formatStatements(sb *strings.Builder, nodes []Node) {
	for i, node := range nodes {
		if i > 0 {
			sb.WriteString(" ")
		}
		format(sb, node)
		if i < len(nodes)-1 && needsTerminator(node) {
			sb.WriteString(";")
		}
	}
}

// operands of operators are parenthesized unless they are atoms
func formatOperand(sb *strings.Builder, node Node) {
	switch node.(type) {
	case *Number, *Identifier, *FunctionCall, *UnaryMinus:
		format(sb, node)
	default:
		sb.WriteString("(")
		format(sb, node)
		sb.WriteString(")")
	}
}
