package interpreter

import (
	"mython-go/pkg/ast"
	"mython-go/pkg/runtime"
)

// execOr implements Or: short-circuits once Lhs is truthy, and always
// yields a BoolValue rather than forwarding either raw operand.
func (ev *Interpreter) execOr(n *ast.Or, env *runtime.Environment) (Outcome, error) {
	lhs, err := ev.evalValue(n.Lhs, env)
	if err != nil {
		return Outcome{}, err
	}
	if runtime.IsTruthy(lhs) {
		return normal(runtime.BoolValue{Val: true}), nil
	}
	rhs, err := ev.evalValue(n.Rhs, env)
	if err != nil {
		return Outcome{}, err
	}
	return normal(runtime.BoolValue{Val: runtime.IsTruthy(rhs)}), nil
}

// execAnd implements And: short-circuits once Lhs is falsy.
func (ev *Interpreter) execAnd(n *ast.And, env *runtime.Environment) (Outcome, error) {
	lhs, err := ev.evalValue(n.Lhs, env)
	if err != nil {
		return Outcome{}, err
	}
	if !runtime.IsTruthy(lhs) {
		return normal(runtime.BoolValue{Val: false}), nil
	}
	rhs, err := ev.evalValue(n.Rhs, env)
	if err != nil {
		return Outcome{}, err
	}
	return normal(runtime.BoolValue{Val: runtime.IsTruthy(rhs)}), nil
}
