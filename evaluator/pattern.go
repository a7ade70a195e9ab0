package evaluator

import (
	"github.com/havrydotdev/golox/ast"
	"github.com/havrydotdev/golox/object"
	"github.com/havrydotdev/golox/token"
)

// bindTuple destructure-binds value against pattern, calling setLeaf for
// each leaf Variable with its bound value. Shared by Declaration,
// Assign, and function-call argument binding -- only what setLeaf does
// (define vs. assign) differs between them.
//
// A leaf pattern binds directly. A group pattern requires value to be
// an object.Tuple no longer than the pattern; missing trailing elements
// bind to nil. This is "total" binding: it always produces exactly as
// many bound names as the pattern has leaves, or returns an error.
func bindTuple(pattern *ast.VariableTuple, value object.Value, tok token.Token, setLeaf func(*ast.Variable, object.Value) error) error {
	if pattern.IsLeaf() {
		return setLeaf(pattern.Var, value)
	}

	tuple, ok := value.(object.Tuple)
	if !ok {
		return newError(tok, "can only decompose tuples")
	}
	if len(tuple) > len(pattern.Items) {
		return newError(tok, "too many arguments to bind")
	}

	for i, item := range pattern.Items {
		var elem object.Value
		if i < len(tuple) {
			elem = tuple[i]
		}
		if err := bindTuple(item, elem, tok, setLeaf); err != nil {
			return err
		}
	}

	return nil
}

// definePattern defines every leaf of pattern to nil in the current
// frame -- used when a Declaration has no initializer.
func (e *Evaluator) definePattern(pattern *ast.VariableTuple) {
	ast.ForEachVariable(pattern, func(v *ast.Variable) {
		e.environment.Define(v.Name.Lexeme, nil)
	})
}

// defineLeaf always succeeds: it (re)defines the name in the current
// frame, shadowing any outer binding of the same name.
func (e *Evaluator) defineLeaf(v *ast.Variable, value object.Value) error {
	e.environment.Define(v.Name.Lexeme, value)
	return nil
}

// assignLeaf updates an existing binding: the resolved ancestor frame
// if the resolver found one, otherwise the globals. An unresolved name
// with no global binding is a runtime error.
func (e *Evaluator) assignLeaf(v *ast.Variable, value object.Value) error {
	if depth, ok := e.locations[v.ID]; ok {
		e.environment.AssignAt(depth, v.Name.Lexeme, value)
		return nil
	}

	if e.globals.Assign(v.Name.Lexeme, value) {
		return nil
	}

	return newError(v.Name, "undefined variable '%s'", v.Name.Lexeme)
}

// bindPattern is bindTuple specialized with setLeaf.
func (e *Evaluator) bindPattern(pattern *ast.VariableTuple, value object.Value, tok token.Token, setLeaf func(*ast.Variable, object.Value) error) error {
	return bindTuple(pattern, value, tok, setLeaf)
}
