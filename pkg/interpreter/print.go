package interpreter

import (
	"fmt"

	"mython-go/pkg/ast"
	"mython-go/pkg/runtime"
)

// execPrint implements spec.md §4.3's Print contract: evaluate each
// argument left to right, write its printing-protocol representation to
// the context's output stream separated by single spaces, then a
// trailing newline. Print always yields None.
func (ev *Interpreter) execPrint(n *ast.Print, env *runtime.Environment) (Outcome, error) {
	out := ev.ctx.Output()
	for i, arg := range n.Args {
		val, err := ev.evalValue(arg, env)
		if err != nil {
			return Outcome{}, err
		}
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		text, err := ev.printRepr(val)
		if err != nil {
			return Outcome{}, err
		}
		fmt.Fprint(out, text)
	}
	fmt.Fprint(out, "\n")
	return normal(runtime.NoneValue{}), nil
}

// execStringify implements Stringify: evaluate arg; if it is an Instance
// with a zero-argument __str__, call it and recursively apply the same
// printing protocol to whatever it returned (even if that is not itself a
// String — per spec.md §9's open question, the returned object is taken
// as the printable payload verbatim). Otherwise produce the value's own
// printing-protocol text, or "None" for None.
func (ev *Interpreter) execStringify(n *ast.Stringify, env *runtime.Environment) (Outcome, error) {
	val, err := ev.evalValue(n.Arg, env)
	if err != nil {
		return Outcome{}, err
	}
	text, err := ev.printRepr(val)
	if err != nil {
		return Outcome{}, err
	}
	return normal(runtime.StringValue{Val: text}), nil
}

// printRepr renders v using Mython's printing protocol, recursing through
// __str__ as many times as the returned value is itself an Instance.
// Unifying Print's and Stringify's rendering through this one routine
// (rather than having Print additionally assume __str__ returns a
// String, as the C++ reference's ClassInstance::Print does) avoids
// reproducing a crash that has no sensible Go analogue; see DESIGN.md.
func (ev *Interpreter) printRepr(v runtime.Value) (string, error) {
	inst, ok := v.(runtime.InstanceValue)
	if !ok {
		return runtime.PrimitiveString(v), nil
	}
	m, ok := inst.Instance.Class.Resolve("__str__")
	if !ok || m.Arity() != 0 {
		return fmt.Sprintf("%p", inst.Instance), nil
	}
	result, err := ev.callMethod(inst.Instance, m, nil)
	if err != nil {
		return "", err
	}
	return ev.printRepr(result)
}
