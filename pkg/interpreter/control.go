package interpreter

import (
	"mython-go/pkg/ast"
	"mython-go/pkg/runtime"
)

// execCompound implements Compound per original_source/statement.cpp's
// Compound::Execute: a Return statement unconditionally stops the block
// and propagates its value, even None — only IfElse and nested Compound
// are gated on holderTruthy (a None result from either of those is
// indistinguishable from "nothing produced" and lets the block keep
// running). Any other statement — an Assignment, Print, bare expression,
// and so on — never stops the block regardless of its own Outcome.
// Falling off the end yields Normal(None).
func (ev *Interpreter) execCompound(n *ast.Compound, env *runtime.Environment) (Outcome, error) {
	for _, stmt := range n.Statements {
		out, err := ev.exec(stmt, env)
		if err != nil {
			return Outcome{}, err
		}
		switch stmt.(type) {
		case *ast.Return:
			return out, nil
		case *ast.IfElse, *ast.Compound:
			if holderTruthy(out) {
				return out, nil
			}
		}
	}
	return normal(runtime.NoneValue{}), nil
}

// execIfElse implements IfElse: the taken branch's Outcome is forwarded
// verbatim, including its Propagate tag — whether that forwarded result
// actually stops an enclosing Compound is decided by that Compound, not
// here. A falsy condition with no Else yields Normal(None).
func (ev *Interpreter) execIfElse(n *ast.IfElse, env *runtime.Environment) (Outcome, error) {
	cond, err := ev.evalValue(n.Cond, env)
	if err != nil {
		return Outcome{}, err
	}
	if runtime.IsTruthy(cond) {
		return ev.exec(n.Then, env)
	}
	if n.Else != nil {
		return ev.exec(n.Else, env)
	}
	return normal(runtime.NoneValue{}), nil
}
