package interpreter

import (
	"mython-go/pkg/ast"
	"mython-go/pkg/runtime"
)

// execClassDefinition implements ClassDefinition: resolve the optional
// parent class by name from the environment, build the runtime.Method
// table for the methods declared directly on this class, flatten it onto
// the parent's table via runtime.NewClass, and bind the resulting
// ClassValue under the class's own name. A class once built never
// changes shape, even if its parent is later redefined (spec.md §3).
func (ev *Interpreter) execClassDefinition(n *ast.ClassDefinition, env *runtime.Environment) (Outcome, error) {
	var parent *runtime.Class
	if n.Parent != "" {
		pv, ok := env.Get(n.Parent)
		if !ok {
			return Outcome{}, &runtime.UndefinedVariableError{Name: n.Parent}
		}
		pc, ok := pv.(runtime.ClassValue)
		if !ok {
			return Outcome{}, errorf("%s is not a class", n.Parent)
		}
		parent = pc.Class
	}

	own := make([]*runtime.Method, len(n.Methods))
	for i, md := range n.Methods {
		own[i] = &runtime.Method{Name: md.Name, Params: md.Params, Body: md.Body}
	}

	class := runtime.NewClass(n.Name, parent, own)
	env.Define(n.Name, runtime.ClassValue{Class: class})
	return normal(runtime.NoneValue{}), nil
}
