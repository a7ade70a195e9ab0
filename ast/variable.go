package ast

import (
	"sync/atomic"

	"github.com/havrydotdev/golox/token"
)

var nextVariableID uint64

// NewVariable constructs a Variable with a fresh, globally unique ID. The ID
// is stable for the lifetime of the AST and is the resolver's map key --
// preferred over pointer identity because it is serializable and doesn't
// depend on the node never moving.
func NewVariable(name token.Token) *Variable {
	return &Variable{Name: name, ID: atomic.AddUint64(&nextVariableID, 1)}
}

// NewVariableLeaf wraps a single Variable as a (trivial) binding pattern.
func NewVariableLeaf(v *Variable) *VariableTuple {
	return &VariableTuple{Var: v}
}

// NewVariableGroup wraps an ordered sequence of sub-patterns as a tuple
// binding pattern.
func NewVariableGroup(items []*VariableTuple) *VariableTuple {
	return &VariableTuple{Items: items}
}

// ForEachVariable visits every leaf Variable in a binding pattern, in order.
func ForEachVariable(vt *VariableTuple, f func(*Variable)) {
	if vt.Var != nil {
		f(vt.Var)
		return
	}

	for _, item := range vt.Items {
		ForEachVariable(item, f)
	}
}
