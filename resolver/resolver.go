// Package resolver performs a static scope analysis pass between parsing
// and evaluation. For every Variable reference it can trace to an
// enclosing block or function scope, it records how many environment
// frames the evaluator must skip to find it -- so the evaluator never
// needs to search the environment chain for a locally-scoped name.
//
// Top-level (global) references are deliberately left unrecorded: the
// scope stack is empty outside any block or function, so there is
// nothing to resolve to. The evaluator falls back to Env.Get/Assign's
// ordinary chain walk for anything the resolver has no entry for. This
// is the "correct by construction" design -- a reference that was
// never resolved can only mean "look it up dynamically as a global",
// never "resolution failed".
package resolver

import "github.com/havrydotdev/golox/ast"

// Locations maps a Variable's ID to the number of environment frames to
// skip to reach its binding. A Variable.ID absent from Locations is a
// global reference.
type Locations map[uint64]int

type scope map[string]bool

// Resolver walks an AST once, before evaluation, threading a stack of
// lexical scopes mirroring the Env chain the evaluator will build.
type Resolver struct {
	scopes    []scope
	locations Locations
}

// New creates a Resolver writing into locations. Passing the same map
// across multiple Resolve calls -- as a REPL does, one call per line --
// accumulates entries rather than discarding previously resolved ones.
func New(locations Locations) *Resolver {
	return &Resolver{locations: locations}
}

func (r *Resolver) Resolve(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		r.stmt(stmt)
	}
}

func (r *Resolver) pushScope() {
	r.scopes = append(r.scopes, make(scope))
}

func (r *Resolver) popScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) top() scope {
	return r.scopes[len(r.scopes)-1]
}

func (r *Resolver) define(vt *ast.VariableTuple) {
	if len(r.scopes) == 0 {
		return
	}

	scope := r.top()
	ast.ForEachVariable(vt, func(v *ast.Variable) {
		scope[v.Name.Lexeme] = true
	})
}

// resolveVariable records v's depth only if some enclosing scope
// actually defines its name. Depth 0 is the innermost scope.
func (r *Resolver) resolveVariable(v *ast.Variable) {
	for depth := 0; depth < len(r.scopes); depth++ {
		scope := r.scopes[len(r.scopes)-1-depth]
		if scope[v.Name.Lexeme] {
			r.locations[v.ID] = depth
			return
		}
	}
}

func (r *Resolver) stmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Block:
		r.pushScope()
		for _, inner := range st.Statements {
			r.stmt(inner)
		}
		r.popScope()

	case *ast.ExpressionStatement:
		if st.Expr != nil {
			r.expr(st.Expr)
		}

	case *ast.If:
		r.expr(st.Cond)
		r.stmt(st.Then)
		if st.Else != nil {
			r.stmt(st.Else)
		}

	case *ast.While:
		r.expr(st.Cond)
		r.stmt(st.Body)

	case *ast.Return:
		if st.Value != nil {
			r.expr(st.Value)
		}

	case *ast.Declaration:
		if st.Initializer != nil {
			r.expr(st.Initializer)
		}
		r.define(st.Pattern)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) expr(e ast.Expr) {
	switch ex := e.(type) {
	case *ast.Literal:
		// no subexpressions, nothing to resolve

	case *ast.Variable:
		r.resolveVariable(ex)

	case *ast.Assign:
		r.expr(ex.Value)
		ast.ForEachVariable(ex.Pattern, r.resolveVariable)

	case *ast.Binary:
		r.expr(ex.Left)
		r.expr(ex.Right)

	case *ast.Logical:
		r.expr(ex.Left)
		r.expr(ex.Right)

	case *ast.Unary:
		r.expr(ex.Right)

	case *ast.Grouping:
		r.expr(ex.Expression)

	case *ast.Tuple:
		for _, elem := range ex.Elements {
			r.expr(elem)
		}

	case *ast.Call:
		r.expr(ex.Callee)
		for _, arg := range ex.Args {
			r.expr(arg)
		}

	case *ast.Function:
		// A single scope covers both the parameters and the body's own
		// statements -- the evaluator executes the body directly in the
		// call frame, with no extra Block frame for it (see ast.Block).
		r.pushScope()
		for _, param := range ex.Params {
			r.define(param)
		}
		for _, inner := range ex.Body.Statements {
			r.stmt(inner)
		}
		r.popScope()

	default:
		panic("resolver: unhandled expression type")
	}
}
