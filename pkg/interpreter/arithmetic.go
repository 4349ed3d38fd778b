package interpreter

import (
	"mython-go/pkg/ast"
	"mython-go/pkg/runtime"
)

// execAdd implements Add per spec.md §4.2: Number+Number sums, String+String
// concatenates, an Instance with a one-argument __add__ dispatches to it
// with the right-hand operand as the sole argument, and any other
// combination is a type error. Unlike Sub/Mult/Div, Add is polymorphic
// because the reference language overloads '+' for strings and objects.
func (ev *Interpreter) execAdd(n *ast.Add, env *runtime.Environment) (Outcome, error) {
	lhs, err := ev.evalValue(n.Lhs, env)
	if err != nil {
		return Outcome{}, err
	}
	rhs, err := ev.evalValue(n.Rhs, env)
	if err != nil {
		return Outcome{}, err
	}

	switch l := lhs.(type) {
	case runtime.NumberValue:
		if r, ok := rhs.(runtime.NumberValue); ok {
			return normal(runtime.NumberValue{Val: l.Val + r.Val}), nil
		}
	case runtime.StringValue:
		if r, ok := rhs.(runtime.StringValue); ok {
			return normal(runtime.StringValue{Val: l.Val + r.Val}), nil
		}
	case runtime.InstanceValue:
		if m, ok := l.Instance.Class.Resolve("__add__"); ok && m.Arity() == 1 {
			result, err := ev.callMethod(l.Instance, m, []runtime.Value{rhs})
			if err != nil {
				return Outcome{}, err
			}
			return normal(result), nil
		}
	}
	return Outcome{}, errorf("cannot add %s and %s", lhs.Kind(), rhs.Kind())
}

// execArith implements Sub and Mult: both operands must be Number, no
// instance overload exists for either in the reference language.
func (ev *Interpreter) execArith(lhsNode, rhsNode ast.Node, env *runtime.Environment, op string, fn func(a, b int32) int32) (Outcome, error) {
	lhs, err := ev.evalValue(lhsNode, env)
	if err != nil {
		return Outcome{}, err
	}
	rhs, err := ev.evalValue(rhsNode, env)
	if err != nil {
		return Outcome{}, err
	}
	l, ok := lhs.(runtime.NumberValue)
	if !ok {
		return Outcome{}, errorf("cannot apply %q to %s and %s", op, lhs.Kind(), rhs.Kind())
	}
	r, ok := rhs.(runtime.NumberValue)
	if !ok {
		return Outcome{}, errorf("cannot apply %q to %s and %s", op, lhs.Kind(), rhs.Kind())
	}
	return normal(runtime.NumberValue{Val: fn(l.Val, r.Val)}), nil
}

// execDiv implements Div: integer division truncating toward zero, which
// is exactly what Go's native int32 '/' already does, and an explicit
// error on division by zero rather than the reference language's
// exception (Mython has no exceptions; spec.md §4.2 calls this out as a
// fatal evaluation error instead).
func (ev *Interpreter) execDiv(n *ast.Div, env *runtime.Environment) (Outcome, error) {
	lhs, err := ev.evalValue(n.Lhs, env)
	if err != nil {
		return Outcome{}, err
	}
	rhs, err := ev.evalValue(n.Rhs, env)
	if err != nil {
		return Outcome{}, err
	}
	l, ok := lhs.(runtime.NumberValue)
	if !ok {
		return Outcome{}, errorf("cannot apply %q to %s and %s", "/", lhs.Kind(), rhs.Kind())
	}
	r, ok := rhs.(runtime.NumberValue)
	if !ok {
		return Outcome{}, errorf("cannot apply %q to %s and %s", "/", lhs.Kind(), rhs.Kind())
	}
	if r.Val == 0 {
		return Outcome{}, errorf("division by zero")
	}
	return normal(runtime.NumberValue{Val: l.Val / r.Val}), nil
}
