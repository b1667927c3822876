package marshaler

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/netherous/monkey/ast"
	"gopkg.in/yaml.v3"
)

// Formats lists the encodings accepted by Encode.
var Formats = []string{"text", "yaml", "json", "spew"}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	DisablePointerMethods:   true,
	SortKeys:                true,
}

// Encode writes node to w in the named format. "text" (or the empty string)
// writes the parenthesised debug rendering, "yaml" and "json" write the tree
// built by ToTree, and "spew" dumps the Go values of the AST itself.
func Encode(w io.Writer, node ast.Node, format string) error {
	if node == nil {
		return fmt.Errorf("monkey: cannot encode nil node")
	}

	switch format {
	case "", "text":
		_, err := io.WriteString(w, node.String()+"\n")
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ToTree(node)); err != nil {
			return fmt.Errorf("monkey: encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ToTree(node)); err != nil {
			return fmt.Errorf("monkey: encoding json: %w", err)
		}
		return nil
	case "spew":
		spewConfig.Fdump(w, node)
		return nil
	default:
		return fmt.Errorf("monkey: unknown dump format %q (want one of %v)", format, Formats)
	}
}

// ToTree converts node into nested maps and slices that generic encoders can
// render. Every map carries the node kind under "node" and, except for the
// program, its source position under "pos".
func ToTree(node ast.Node) any {
	switch n := node.(type) {
	case *ast.Program:
		tree := map[string]any{
			"node":       "Program",
			"statements": statements(n.Statements),
		}
		if len(n.Errors) > 0 {
			tree["errors"] = n.Errors.Messages()
		}
		return tree
	case *ast.LetStatement:
		tree := withPos(n, "LetStatement", map[string]any{
			"value": ToTree(n.Value),
		})
		if n.Name != nil {
			tree["name"] = n.Name.Value
		}
		return tree
	case *ast.ReturnStatement:
		return withPos(n, "ReturnStatement", map[string]any{
			"value": ToTree(n.ReturnValue),
		})
	case *ast.ExpressionStatement:
		return withPos(n, "ExpressionStatement", map[string]any{
			"expression": ToTree(n.Expression),
		})
	case *ast.BlockStatement:
		return block(n)
	case *ast.Identifier:
		return withPos(n, "Identifier", map[string]any{"value": n.Value})
	case *ast.IntegerLiteral:
		return withPos(n, "IntegerLiteral", map[string]any{"value": n.Value})
	case *ast.Boolean:
		return withPos(n, "Boolean", map[string]any{"value": n.Value})
	case *ast.PrefixExpression:
		return withPos(n, "PrefixExpression", map[string]any{
			"operator": n.Operator,
			"right":    ToTree(n.Right),
		})
	case *ast.InfixExpression:
		return withPos(n, "InfixExpression", map[string]any{
			"left":     ToTree(n.Left),
			"operator": n.Operator,
			"right":    ToTree(n.Right),
		})
	case *ast.IfExpression:
		tree := withPos(n, "IfExpression", map[string]any{
			"condition":   ToTree(n.Condition),
			"consequence": block(n.Consequence),
		})
		if n.Alternative != nil {
			tree["alternative"] = block(n.Alternative)
		}
		return tree
	case *ast.FunctionLiteral:
		params := make([]any, 0, len(n.Parameters))
		for _, p := range n.Parameters {
			params = append(params, p.Value)
		}
		return withPos(n, "FunctionLiteral", map[string]any{
			"parameters": params,
			"body":       block(n.Body),
		})
	case *ast.CallExpression:
		args := make([]any, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			args = append(args, ToTree(a))
		}
		return withPos(n, "CallExpression", map[string]any{
			"function":  ToTree(n.Function),
			"arguments": args,
		})
	}
	// Unknown node types and missing children render as null.
	return nil
}

func withPos(n ast.Node, kind string, fields map[string]any) map[string]any {
	fields["node"] = kind
	fields["pos"] = n.Pos().String()
	return fields
}

func statements(stmts []ast.Statement) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, ToTree(s))
	}
	return out
}

func block(b *ast.BlockStatement) any {
	if b == nil {
		return nil
	}
	return withPos(b, "BlockStatement", map[string]any{
		"statements": statements(b.Statements),
	})
}
