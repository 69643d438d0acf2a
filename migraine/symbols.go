package migraine

// Functions maps names to their definitions.
type Functions map[string]*FunctionDefinition

// Collect registers the function definitions reachable from node without evaluating anything.
// A name defined twice within one call is an error; definitions from earlier calls are replaced.
func Collect(node Node, functions Functions) error {
	c := &collector{
		functions: functions,
		seen:      make(map[string]bool),
	}
	return c.collect(node)
}

type collector struct {
	functions Functions
	seen      map[string]bool
}

func (c *collector) collect(node Node) error {
	switch node := node.(type) {

	case *ExpressionList:
		return c.collectAll(node.Expressions)

	case *Block:
		return c.collectAll(node.Expressions)

	case *IfStatement:
		return c.collect(node.Body)

	case *FunctionDefinition:
		if c.seen[node.Name] {
			return &DuplicateFunction{
				Name: node.Name,
			}
		}
		c.seen[node.Name] = true
		c.functions[node.Name] = node

	}
	return nil
}

func (c *collector) collectAll(nodes []Node) error {
	for _, node := range nodes {
		if err := c.collect(node); err != nil {
			return err
		}
	}
	return nil
}
