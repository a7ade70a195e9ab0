package ast

import (
	"fmt"
	"strings"
)

// Print renders a statement as a parenthesized s-expression, in the style of
// the classic Lox AST printer. Used only by the CLI's --parser-debug flag.
func Print(s Stmt) string {
	switch st := s.(type) {
	case *Block:
		parts := make([]string, len(st.Statements))
		for i, inner := range st.Statements {
			parts[i] = Print(inner)
		}
		return parenthesize("block", parts...)
	case *ExpressionStatement:
		if st.Expr == nil {
			return "(;)"
		}
		return PrintExpr(st.Expr)
	case *If:
		branches := []string{PrintExpr(st.Cond), Print(st.Then)}
		if st.Else != nil {
			branches = append(branches, Print(st.Else))
		}
		return parenthesize("if", branches...)
	case *While:
		return parenthesize("while", PrintExpr(st.Cond), Print(st.Body))
	case *Return:
		if st.Value == nil {
			return "(return)"
		}
		return parenthesize("return", PrintExpr(st.Value))
	case *Declaration:
		if st.Initializer == nil {
			return parenthesize("var "+printPattern(st.Pattern))
		}
		return parenthesize("var "+printPattern(st.Pattern), PrintExpr(st.Initializer))
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

// PrintExpr renders an expression as a parenthesized s-expression.
func PrintExpr(e Expr) string {
	switch ex := e.(type) {
	case *Literal:
		if s, ok := ex.Value.(string); ok {
			return fmt.Sprintf("%q", s)
		}
		return fmt.Sprintf("%v", ex.Value)
	case *Variable:
		return ex.Name.Lexeme
	case *VariableTuple:
		return printPattern(ex)
	case *Assign:
		return parenthesize("assign "+printPattern(ex.Pattern), PrintExpr(ex.Value))
	case *Binary:
		return parenthesize(ex.Op.Lexeme, PrintExpr(ex.Left), PrintExpr(ex.Right))
	case *Logical:
		return parenthesize(ex.Op.Lexeme, PrintExpr(ex.Left), PrintExpr(ex.Right))
	case *Unary:
		return parenthesize(ex.Op.Lexeme, PrintExpr(ex.Right))
	case *Grouping:
		return parenthesize("group", PrintExpr(ex.Expression))
	case *Tuple:
		parts := make([]string, len(ex.Elements))
		for i, el := range ex.Elements {
			parts[i] = PrintExpr(el)
		}
		return parenthesize("tuple", parts...)
	case *Call:
		parts := make([]string, len(ex.Args))
		for i, a := range ex.Args {
			parts[i] = PrintExpr(a)
		}
		return parenthesize("call "+PrintExpr(ex.Callee), parts...)
	case *Function:
		parts := make([]string, len(ex.Params))
		for i, p := range ex.Params {
			parts[i] = printPattern(p)
		}
		parts = append(parts, Print(ex.Body))
		return parenthesize("fun", parts...)
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func printPattern(vt *VariableTuple) string {
	if vt.Var != nil {
		return vt.Var.Name.Lexeme
	}

	parts := make([]string, len(vt.Items))
	for i, item := range vt.Items {
		parts[i] = printPattern(item)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func parenthesize(name string, parts ...string) string {
	b := strings.Builder{}

	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	b.WriteByte(')')

	return b.String()
}
