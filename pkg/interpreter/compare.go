package interpreter

import (
	"mython-go/pkg/ast"
	"mython-go/pkg/runtime"
)

// execComparison implements Comparison per spec.md §4.2: only Equal and
// Less are primitive; NotEqual, Greater, LessOrEqual, and GreaterOrEqual
// are all derived from them so that defining __eq__/__lt__ on a class is
// enough to make every comparison operator work against it.
func (ev *Interpreter) execComparison(n *ast.Comparison, env *runtime.Environment) (Outcome, error) {
	lhs, err := ev.evalValue(n.Lhs, env)
	if err != nil {
		return Outcome{}, err
	}
	rhs, err := ev.evalValue(n.Rhs, env)
	if err != nil {
		return Outcome{}, err
	}

	switch n.Op {
	case ast.OpEq:
		eq, err := ev.valuesEqual(lhs, rhs)
		if err != nil {
			return Outcome{}, err
		}
		return normal(runtime.BoolValue{Val: eq}), nil
	case ast.OpNotEq:
		eq, err := ev.valuesEqual(lhs, rhs)
		if err != nil {
			return Outcome{}, err
		}
		return normal(runtime.BoolValue{Val: !eq}), nil
	case ast.OpLess:
		lt, err := ev.valuesLess(lhs, rhs)
		if err != nil {
			return Outcome{}, err
		}
		return normal(runtime.BoolValue{Val: lt}), nil
	case ast.OpLessEq:
		lt, err := ev.valuesLess(lhs, rhs)
		if err != nil {
			return Outcome{}, err
		}
		if lt {
			return normal(runtime.BoolValue{Val: true}), nil
		}
		eq, err := ev.valuesEqual(lhs, rhs)
		if err != nil {
			return Outcome{}, err
		}
		return normal(runtime.BoolValue{Val: eq}), nil
	case ast.OpGreater:
		lt, err := ev.valuesLess(lhs, rhs)
		if err != nil {
			return Outcome{}, err
		}
		if lt {
			return normal(runtime.BoolValue{Val: false}), nil
		}
		eq, err := ev.valuesEqual(lhs, rhs)
		if err != nil {
			return Outcome{}, err
		}
		return normal(runtime.BoolValue{Val: !eq}), nil
	case ast.OpGreaterEq:
		lt, err := ev.valuesLess(lhs, rhs)
		if err != nil {
			return Outcome{}, err
		}
		return normal(runtime.BoolValue{Val: !lt}), nil
	}
	return Outcome{}, errorf("unsupported comparison operator %s", n.Op)
}

// valuesEqual implements the primitive Equal comparison: same-kind
// primitives compare by value, two Instances dispatch to a one-argument
// __eq__ on the left operand, and anything else (including any
// comparison involving a ClassValue) is an error — classes themselves
// are never comparable, only their instances via __eq__.
func (ev *Interpreter) valuesEqual(lhs, rhs runtime.Value) (bool, error) {
	switch l := lhs.(type) {
	case runtime.NoneValue:
		if _, ok := rhs.(runtime.NoneValue); ok {
			return true, nil
		}
	case runtime.BoolValue:
		if r, ok := rhs.(runtime.BoolValue); ok {
			return l.Val == r.Val, nil
		}
	case runtime.NumberValue:
		if r, ok := rhs.(runtime.NumberValue); ok {
			return l.Val == r.Val, nil
		}
	case runtime.StringValue:
		if r, ok := rhs.(runtime.StringValue); ok {
			return l.Val == r.Val, nil
		}
	case runtime.InstanceValue:
		if m, ok := l.Instance.Class.Resolve("__eq__"); ok && m.Arity() == 1 {
			result, err := ev.callMethod(l.Instance, m, []runtime.Value{rhs})
			if err != nil {
				return false, err
			}
			b, ok := result.(runtime.BoolValue)
			if !ok {
				return false, errorf("__eq__ must return a Bool, got %s", result.Kind())
			}
			return b.Val, nil
		}
	}
	return false, errorf("objects cannot be compared")
}

// valuesLess implements the primitive Less comparison: Number and String
// compare natively, an Instance dispatches to a one-argument __lt__, and
// anything else is an error.
func (ev *Interpreter) valuesLess(lhs, rhs runtime.Value) (bool, error) {
	switch l := lhs.(type) {
	case runtime.NumberValue:
		if r, ok := rhs.(runtime.NumberValue); ok {
			return l.Val < r.Val, nil
		}
	case runtime.StringValue:
		if r, ok := rhs.(runtime.StringValue); ok {
			return l.Val < r.Val, nil
		}
	case runtime.InstanceValue:
		if m, ok := l.Instance.Class.Resolve("__lt__"); ok && m.Arity() == 1 {
			result, err := ev.callMethod(l.Instance, m, []runtime.Value{rhs})
			if err != nil {
				return false, err
			}
			b, ok := result.(runtime.BoolValue)
			if !ok {
				return false, errorf("__lt__ must return a Bool, got %s", result.Kind())
			}
			return b.Val, nil
		}
	}
	return false, errorf("objects cannot be compared")
}
