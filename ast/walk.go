package ast

// Walk traverses the tree rooted at node in depth-first pre-order.
// If fn returns false the children of that node are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Walk(s, fn)
		}
	case *LetStatement:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		walkExpr(n.Value, fn)
	case *ReturnStatement:
		walkExpr(n.ReturnValue, fn)
	case *ExpressionStatement:
		walkExpr(n.Expression, fn)
	case *BlockStatement:
		for _, s := range n.Statements {
			Walk(s, fn)
		}
	case *PrefixExpression:
		walkExpr(n.Right, fn)
	case *InfixExpression:
		walkExpr(n.Left, fn)
		walkExpr(n.Right, fn)
	case *IfExpression:
		walkExpr(n.Condition, fn)
		if n.Consequence != nil {
			Walk(n.Consequence, fn)
		}
		if n.Alternative != nil {
			Walk(n.Alternative, fn)
		}
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			Walk(p, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}
	case *CallExpression:
		walkExpr(n.Function, fn)
		for _, a := range n.Arguments {
			walkExpr(a, fn)
		}
	}
}

// walkExpr guards against interface values holding a nil expression.
func walkExpr(e Expression, fn func(Node) bool) {
	if e != nil {
		Walk(e, fn)
	}
}
