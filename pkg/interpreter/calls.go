package interpreter

import (
	"mython-go/pkg/ast"
	"mython-go/pkg/runtime"
)

// callMethod implements the method invocation protocol from spec.md §4.3:
// a fresh frame, the receiver bound under the method's receiver name as a
// handle that does not outlive the call, positional arguments bound in
// order, and the body's MethodBody result (or None) returned. It is the
// single choke point every magic-method dispatch and every explicit
// MethodCall goes through.
func (ev *Interpreter) callMethod(receiver *runtime.Instance, m *runtime.Method, args []runtime.Value) (runtime.Value, error) {
	frame := runtime.NewEnvironment()
	frame.Define(m.ReceiverName(), runtime.InstanceValue{Instance: receiver})
	for i, name := range m.Params[1:] {
		frame.Define(name, args[i])
	}
	return ev.executeMethodBody(m.Body, frame)
}

// executeMethodBody runs a method's body and takes its result value
// regardless of whether it reached us via Normal or Propagate — the
// propagation tag only matters to an enclosing Compound, and a method
// frame has none.
func (ev *Interpreter) executeMethodBody(body ast.Node, frame *runtime.Environment) (runtime.Value, error) {
	out, err := ev.exec(body, frame)
	if err != nil {
		return nil, err
	}
	return out.Value, nil
}

// execMethodCall implements MethodCall(obj, name, args): args evaluate
// left to right, then obj, matching the reference evaluator's order
// exactly (spec.md's own listed order — args before obj — is preserved
// because some Mython programs rely on that ordering for side effects).
func (ev *Interpreter) execMethodCall(n *ast.MethodCall, env *runtime.Environment) (Outcome, error) {
	args := make([]runtime.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := ev.evalValue(a, env)
		if err != nil {
			return Outcome{}, err
		}
		args[i] = v
	}
	objVal, err := ev.evalValue(n.Obj, env)
	if err != nil {
		return Outcome{}, err
	}
	inst, ok := objVal.(runtime.InstanceValue)
	if !ok {
		return Outcome{}, errorf("wrong method call")
	}
	m, ok := inst.Instance.Class.Resolve(n.Name)
	if !ok || m.Arity() != len(args) {
		return Outcome{}, errorf("wrong method call")
	}
	result, err := ev.callMethod(inst.Instance, m, args)
	if err != nil {
		return Outcome{}, err
	}
	return normal(result), nil
}

// execNewInstance implements NewInstance(class, args): build a fresh
// Instance, and only if the class defines __init__ at the matching arity
// do we evaluate the constructor arguments and invoke it — an unmatched
// or absent __init__ leaves fields empty and the arguments unevaluated.
func (ev *Interpreter) execNewInstance(n *ast.NewInstance, env *runtime.Environment) (Outcome, error) {
	classVal, err := ev.evalValue(n.Class, env)
	if err != nil {
		return Outcome{}, err
	}
	cv, ok := classVal.(runtime.ClassValue)
	if !ok {
		return Outcome{}, errorf("cannot construct an instance of a non-class value")
	}
	inst := runtime.NewInstance(cv.Class)

	if m, ok := cv.Class.Resolve("__init__"); ok && m.Arity() == len(n.Args) {
		args := make([]runtime.Value, len(n.Args))
		for i, a := range n.Args {
			v, err := ev.evalValue(a, env)
			if err != nil {
				return Outcome{}, err
			}
			args[i] = v
		}
		if _, err := ev.callMethod(inst, m, args); err != nil {
			return Outcome{}, err
		}
	}
	return normal(runtime.InstanceValue{Instance: inst}), nil
}
