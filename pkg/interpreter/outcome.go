package interpreter

import "mython-go/pkg/runtime"

// Outcome is the evaluator's replacement for the C++ reference's
// dynamic_cast based block-exit detection (spec.md §9): every AST node's execution
// yields either a Normal result or a Propagate result, and only Compound
// inspects the tag of its direct children to decide whether to stop.
type Outcome struct {
	Value     runtime.Value
	Propagate bool
}

func normal(v runtime.Value) Outcome { return Outcome{Value: v} }

func propagated(v runtime.Value) Outcome { return Outcome{Value: v, Propagate: true} }

// holderTruthy reproduces the original interpreter's "non-empty holder"
// test: a None-valued result is indistinguishable from "nothing produced"
// for the purposes of Compound's propagation decision. It gates only the
// IfElse and nested Compound cases in control.go's execCompound — a
// Return always propagates regardless of its value, per
// original_source/statement.cpp's Compound::Execute condition.
func holderTruthy(o Outcome) bool {
	return o.Propagate && o.Value.Kind() != runtime.KindNone
}
