// Package interpreter implements the tree-walking evaluator for Mython:
// the per-node execution contract, operator semantics, method dispatch
// with inheritance, and the comparison/truthiness helpers from spec.md
// §4.2. It is the only package that knows how to execute an ast.Node,
// which keeps pkg/ast and pkg/runtime free of an import cycle between
// "what a method body is" and "how it runs".
package interpreter

import (
	"mython-go/pkg/ast"
	"mython-go/pkg/runtime"
)

// Interpreter evaluates a Mython program against a single output Context.
type Interpreter struct {
	ctx runtime.Context
}

// New constructs an Interpreter writing Print output to ctx.
func New(ctx runtime.Context) *Interpreter {
	return &Interpreter{ctx: ctx}
}

// Run evaluates program as a top-level module: a fresh global environment,
// executing the Compound program and discarding whatever it propagates
// (top level has nothing to propagate to).
func (ev *Interpreter) Run(program ast.Node) error {
	env := runtime.NewEnvironment()
	_, err := ev.exec(program, env)
	return err
}

// RunWithGlobals is Run but lets the caller pre-seed the global
// environment (e.g. with class values injected by a host driver).
func (ev *Interpreter) RunWithGlobals(program ast.Node, globals *runtime.Environment) error {
	_, err := ev.exec(program, globals)
	return err
}

// evalValue evaluates node purely for its value, discarding any
// propagation tag. Every expression operand (Add's Lhs/Rhs, Print's
// args, an IfElse condition, ...) goes through this, never through exec
// directly, because expression subtrees cannot themselves propagate a
// method return — only Return/IfElse/Compound can.
func (ev *Interpreter) evalValue(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	out, err := ev.exec(node, env)
	if err != nil {
		return nil, err
	}
	return out.Value, nil
}

// exec dispatches on the concrete AST node type and is the single place
// where every node kind's execution contract (spec.md §4.3) is
// implemented.
func (ev *Interpreter) exec(node ast.Node, env *runtime.Environment) (Outcome, error) {
	switch n := node.(type) {
	case *ast.NumericConst:
		return normal(runtime.NumberValue{Val: n.Value}), nil
	case *ast.StringConst:
		return normal(runtime.StringValue{Val: n.Value}), nil
	case *ast.BoolConst:
		return normal(runtime.BoolValue{Val: n.Value}), nil
	case *ast.NoneLiteral:
		return normal(runtime.NoneValue{}), nil

	case *ast.VariableValue:
		v, err := ev.resolveVariable(n, env)
		if err != nil {
			return Outcome{}, err
		}
		return normal(v), nil

	case *ast.Assignment:
		val, err := ev.evalValue(n.Rhs, env)
		if err != nil {
			return Outcome{}, err
		}
		env.Define(n.Name, val)
		return normal(val), nil

	case *ast.FieldAssignment:
		return ev.execFieldAssignment(n, env)

	case *ast.Print:
		return ev.execPrint(n, env)

	case *ast.Stringify:
		return ev.execStringify(n, env)

	case *ast.MethodCall:
		return ev.execMethodCall(n, env)

	case *ast.NewInstance:
		return ev.execNewInstance(n, env)

	case *ast.Add:
		return ev.execAdd(n, env)
	case *ast.Sub:
		return ev.execArith(n.Lhs, n.Rhs, env, "-", func(a, b int32) int32 { return a - b })
	case *ast.Mult:
		return ev.execArith(n.Lhs, n.Rhs, env, "*", func(a, b int32) int32 { return a * b })
	case *ast.Div:
		return ev.execDiv(n, env)

	case *ast.Or:
		return ev.execOr(n, env)
	case *ast.And:
		return ev.execAnd(n, env)
	case *ast.Not:
		v, err := ev.evalValue(n.Arg, env)
		if err != nil {
			return Outcome{}, err
		}
		return normal(runtime.BoolValue{Val: !runtime.IsTruthy(v)}), nil

	case *ast.Comparison:
		return ev.execComparison(n, env)

	case *ast.Compound:
		return ev.execCompound(n, env)
	case *ast.Return:
		val, err := ev.evalValue(n.Expr, env)
		if err != nil {
			return Outcome{}, err
		}
		return propagated(val), nil
	case *ast.IfElse:
		return ev.execIfElse(n, env)

	case *ast.ClassDefinition:
		return ev.execClassDefinition(n, env)
	}
	return Outcome{}, errorf("unsupported AST node %T", node)
}

func (ev *Interpreter) resolveVariable(n *ast.VariableValue, env *runtime.Environment) (runtime.Value, error) {
	if len(n.Chain) == 0 {
		return nil, errorf("empty variable reference")
	}
	v, ok := env.Get(n.Chain[0])
	if !ok {
		return nil, &runtime.UndefinedVariableError{Name: n.Chain[0]}
	}
	for _, field := range n.Chain[1:] {
		inst, ok := v.(runtime.InstanceValue)
		if !ok {
			return nil, errorf("object is not a class instance")
		}
		fv, ok := inst.Instance.Fields.Get(field)
		if !ok {
			return nil, &runtime.UndefinedVariableError{Name: field}
		}
		v = fv
	}
	return v, nil
}

func (ev *Interpreter) execFieldAssignment(n *ast.FieldAssignment, env *runtime.Environment) (Outcome, error) {
	targetVal, err := ev.resolveVariable(n.Target, env)
	if err != nil {
		return Outcome{}, err
	}
	inst, ok := targetVal.(runtime.InstanceValue)
	if !ok {
		return Outcome{}, errorf("object is not a class instance")
	}
	rhs, err := ev.evalValue(n.Rhs, env)
	if err != nil {
		return Outcome{}, err
	}
	inst.Instance.Fields.Define(n.Field, rhs)
	return normal(rhs), nil
}
