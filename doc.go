/*
Package monkey is the front end of the monkey scripting language: a lexer
that turns source bytes into tokens and a parser that builds an abstract
syntax tree from them.

The language is small and C-like. Programs are sequences of let bindings,
return statements and expression statements; expressions cover integer and
boolean literals, identifiers, prefix and infix operators, if/else, function
literals and calls.

	let add = fn(a, b) { a + b; };
	let result = add(5, if (ten > 1) { 10 } else { 0 });

The packages can be used directly (token, lexer, parser, ast, errors) or
through the helpers in this package.

Tokenizing:

	for _, tok := range monkey.Tokenize(src) {
		fmt.Println(tok) // LET, IDENT(add), =, ...
	}

Parsing never stops at the first problem. Parse always returns the program
built from the statements that were valid, and an errors.ParseErrors value
describing everything else. With the errors package of this module imported
as merrors:

	program, err := monkey.Parse(src)
	if err != nil {
		var perrs merrors.ParseErrors
		if errors.As(err, &perrs) {
			for _, e := range perrs {
				fmt.Printf("%d:%d: %s\n", e.Line, e.Column, e.Message)
			}
		}
	}

The tree can be printed back as canonical source with Format, or dumped for
inspection with Dump in text, yaml, json or spew form:

	out, err := monkey.Format(program, monkey.Indent(4))
	tree, err := monkey.Dump(program, "yaml")

Evaluation is out of scope; the tree is the end product.
*/
package monkey
