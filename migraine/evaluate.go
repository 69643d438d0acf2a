package migraine

import "fmt"

// Evaluate executes node in scope. Blocks and calls push child frames of scope and pop them on return.
func Evaluate(node Node, scope Scope, functions Functions) (float64, error) {
	switch node := node.(type) {

	case *Number:
		return node.Value, nil

	case *Identifier:
		return scope.Resolve(node.Name)

	case *UnaryMinus:
		value, err := Evaluate(node.Operand, scope, functions)
		if err != nil {
			return 0, err
		}
		return -value, nil

	case *Operation:
		return evalOperation(node, scope, functions)

	case *Assignment:
		value, err := Evaluate(node.Expression, scope, functions)
		if err != nil {
			return 0, err
		}
		scope.Assign(node.Name, value)
		return value, nil

	case *ExpressionList:
		return evalSequence(node.Expressions, scope, functions)

	case *Block:
		return evalBlock(node, scope, functions)

	case *FunctionDefinition:
		// registered by Collect
		return 0, nil

	case *FunctionCall:
		return evalCall(node, scope, functions)

	case *IfStatement:
		cond, err := Evaluate(node.Condition, scope, functions)
		if err != nil {
			return 0, err
		}
		if cond == 0 {
			return 0, nil
		}
		return Evaluate(node.Body, scope, functions)

	case *Condition:
		return evalCondition(node, scope, functions)

	}

	return 0, fmt.Errorf("unknown node type %T", node)
}

func evalOperation(node *Operation, scope Scope, functions Functions) (float64, error) {
	result, err := Evaluate(node.Left, scope, functions)
	if err != nil {
		return 0, err
	}
	for _, rest := range node.Rest {
		operand, err := Evaluate(rest.Operand, scope, functions)
		if err != nil {
			return 0, err
		}
		switch rest.Operator {
		case '+':
			result += operand
		case '-':
			result -= operand
		case '*':
			result *= operand
		case '/':
			result /= operand
		default:
			return 0, fmt.Errorf("unsupported operator: %c", rest.Operator)
		}
	}
	return result, nil
}

func evalSequence(nodes []Node, scope Scope, functions Functions) (last float64, err error) {
	for _, node := range nodes {
		last, err = Evaluate(node, scope, functions)
		if err != nil {
			return 0, err
		}
	}
	return last, nil
}

func evalBlock(block *Block, scope Scope, functions Functions) (float64, error) {
	inner := scope.Push()
	defer inner.Pop()
	if err := Collect(block, functions); err != nil {
		return 0, err
	}
	return evalSequence(block.Expressions, inner, functions)
}

func evalCall(call *FunctionCall, scope Scope, functions Functions) (float64, error) {
	def, ok := functions[call.Name]
	if !ok {
		return 0, &UndefinedFunction{
			Name: call.Name,
		}
	}
	if len(def.Parameters) != len(call.Arguments) {
		return 0, &BadFunctionCall{
			Name:     call.Name,
			Expected: len(def.Parameters),
			Received: len(call.Arguments),
		}
	}

	args := make([]float64, len(call.Arguments))
	for i, arg := range call.Arguments {
		value, err := Evaluate(arg, scope, functions)
		if err != nil {
			return 0, err
		}
		args[i] = value
	}

	// the frame hangs off the caller's scope, not the definition's
	frame := scope.Push()
	defer frame.Pop()
	for i, name := range def.Parameters {
		frame.Define(name, args[i])
	}
	return Evaluate(def.Body, frame, functions)
}

func evalCondition(cond *Condition, scope Scope, functions Functions) (float64, error) {
	left, err := Evaluate(cond.Left, scope, functions)
	if err != nil {
		return 0, err
	}
	if cond.Operator == "" {
		return left, nil
	}
	right, err := Evaluate(cond.Right, scope, functions)
	if err != nil {
		return 0, err
	}

	var ok bool
	switch cond.Operator {
	case "==":
		ok = left == right
	case "<=":
		ok = left <= right
	case ">=":
		ok = left >= right
	case "<":
		ok = left < right
	case ">":
		ok = left > right
	default:
		return 0, fmt.Errorf("unsupported comparison: %s", cond.Operator)
	}
	if ok {
		return 1, nil
	}
	return 0, nil
}
