package interpreter

import (
	"strings"
	"testing"

	"mython-go/pkg/ast"
	"mython-go/pkg/runtime"
)

func run(t *testing.T, program ast.Node) string {
	t.Helper()
	ctx := runtime.NewBufferContext()
	ev := New(ctx)
	if err := ev.Run(program); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return ctx.String()
}

func TestPrintMixedArgs(t *testing.T) {
	out := run(t, ast.PrintOf(ast.Num(1), ast.Str("two"), ast.Bool(true), ast.None()))
	if out != "1 two True None\n" {
		t.Fatalf("got %q", out)
	}
}

func TestArithmeticAndTruncatingDivision(t *testing.T) {
	out := run(t, ast.PrintOf(ast.DivOf(ast.Num(-7), ast.Num(2))))
	if out != "-3\n" {
		t.Fatalf("expected truncation toward zero, got %q", out)
	}
}

func TestDivisionByZeroIsError(t *testing.T) {
	ctx := runtime.NewBufferContext()
	ev := New(ctx)
	err := ev.Run(ast.DivOf(ast.Num(1), ast.Num(0)))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestStringConcatenation(t *testing.T) {
	out := run(t, ast.PrintOf(ast.AddOf(ast.Str("foo"), ast.Str("bar"))))
	if out != "foobar\n" {
		t.Fatalf("got %q", out)
	}
}

func TestShortCircuitOrAnd(t *testing.T) {
	out := run(t, ast.PrintOf(
		ast.OrOf(ast.Bool(true), ast.Num(0)),
		ast.AndOf(ast.Bool(false), ast.Num(0)),
	))
	if out != "True False\n" {
		t.Fatalf("got %q", out)
	}
}

func TestComparisonDerivedOperators(t *testing.T) {
	out := run(t, ast.PrintOf(
		ast.Cmp(ast.OpLessEq, ast.Num(2), ast.Num(2)),
		ast.Cmp(ast.OpGreater, ast.Num(3), ast.Num(2)),
		ast.Cmp(ast.OpGreaterEq, ast.Num(2), ast.Num(3)),
		ast.Cmp(ast.OpNotEq, ast.Str("a"), ast.Str("b")),
	))
	if out != "True True False True\n" {
		t.Fatalf("got %q", out)
	}
}

func TestClassWithInitAndMethodCall(t *testing.T) {
	program := ast.Block(
		ast.Class("Counter", "",
			ast.Method("__init__", []string{"self", "start"},
				ast.SetField(ast.Var("self"), "value", ast.Var("start"))),
			ast.Method("bump", []string{"self"},
				ast.Block(
					ast.SetField(ast.Var("self"), "value", ast.AddOf(ast.Var("self", "value"), ast.Num(1))),
					ast.Ret(ast.Var("self", "value")))),
		),
		ast.Assign("c", ast.New(ast.Var("Counter"), ast.Num(10))),
		ast.PrintOf(ast.Call(ast.Var("c"), "bump")),
		ast.PrintOf(ast.Call(ast.Var("c"), "bump")),
	)
	out := run(t, program)
	if out != "11\n12\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInheritanceResolvesParentMethod(t *testing.T) {
	program := ast.Block(
		ast.Class("Animal", "",
			ast.Method("speak", []string{"self"}, ast.Ret(ast.Str("..."))),
		),
		ast.Class("Dog", "Animal",
			ast.Method("__init__", []string{"self"}, ast.None()),
		),
		ast.Assign("d", ast.New(ast.Var("Dog"))),
		ast.PrintOf(ast.Call(ast.Var("d"), "speak")),
	)
	out := run(t, program)
	if out != "...\n" {
		t.Fatalf("got %q", out)
	}
}

func TestStringifyDispatchesStrAndRecurses(t *testing.T) {
	program := ast.Block(
		ast.Class("Box", "",
			ast.Method("__init__", []string{"self", "inner"}, ast.SetField(ast.Var("self"), "inner", ast.Var("inner"))),
			ast.Method("__str__", []string{"self"}, ast.Var("self", "inner")),
		),
		ast.Assign("b", ast.New(ast.Var("Box"), ast.Str("hello"))),
		ast.PrintOf(ast.Str2(ast.Var("b"))),
	)
	out := run(t, program)
	if out != "hello\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInstanceWithoutStrPrintsOpaqueIdentifier(t *testing.T) {
	program := ast.Block(
		ast.Class("Empty", ""),
		ast.Assign("e", ast.New(ast.Var("Empty"))),
		ast.PrintOf(ast.Var("e")),
	)
	out := run(t, program)
	if !strings.HasPrefix(out, "0x") {
		t.Fatalf("expected opaque pointer identifier, got %q", out)
	}
}

func TestIfElseBranching(t *testing.T) {
	program := ast.Block(
		ast.If(ast.Cmp(ast.OpEq, ast.Num(1), ast.Num(1)),
			ast.PrintOf(ast.Str("yes")),
			ast.PrintOf(ast.Str("no"))),
	)
	out := run(t, program)
	if out != "yes\n" {
		t.Fatalf("got %q", out)
	}
}

// TestReturnPropagatesThroughCompoundEvenWhenNone verifies that a bare
// `return` (or `return None`) unconditionally stops the enclosing block,
// per original_source/statement.cpp's Compound::Execute: only IfElse and
// nested Compound are gated on a non-empty holder — Return never is.
func TestReturnPropagatesThroughCompoundEvenWhenNone(t *testing.T) {
	program := ast.Block(
		ast.Class("C", "",
			ast.Method("f", []string{"self"},
				ast.Block(
					ast.Ret(ast.None()),
					ast.PrintOf(ast.Str("unreachable")),
				)),
		),
		ast.Assign("c", ast.New(ast.Var("C"))),
		ast.Call(ast.Var("c"), "f"),
	)
	out := run(t, program)
	if out != "" {
		t.Fatalf("got %q", out)
	}
}

// TestIfElseWithNoneDoesNotStopTheEnclosingBlock verifies the IfElse/
// Compound side of the same rule: a None result from an IfElse branch is
// indistinguishable from "nothing produced", so the enclosing block keeps
// running past it — unlike Return, which always stops it.
func TestIfElseWithNoneDoesNotStopTheEnclosingBlock(t *testing.T) {
	program := ast.Block(
		ast.Class("C", "",
			ast.Method("g", []string{"self"},
				ast.Block(
					ast.If(ast.Bool(true), ast.None(), nil),
					ast.PrintOf(ast.Str("reached")),
				)),
		),
		ast.Assign("c", ast.New(ast.Var("C"))),
		ast.Call(ast.Var("c"), "g"),
	)
	out := run(t, program)
	if out != "reached\n" {
		t.Fatalf("got %q", out)
	}
}

// TestReturningNonNoneStopsTheEnclosingBlock is the complement: a Return
// that yields a non-None value does stop the block immediately.
func TestReturningNonNoneStopsTheEnclosingBlock(t *testing.T) {
	program := ast.Block(
		ast.Class("C", "",
			ast.Method("f", []string{"self"},
				ast.Block(
					ast.Ret(ast.Num(1)),
					ast.PrintOf(ast.Str("unreachable")),
				)),
		),
		ast.Assign("c", ast.New(ast.Var("C"))),
		ast.Call(ast.Var("c"), "f"),
	)
	out := run(t, program)
	if out != "" {
		t.Fatalf("got %q", out)
	}
}

func TestNestedFieldChainAssignmentAndLookup(t *testing.T) {
	program := ast.Block(
		ast.Class("Node", "",
			ast.Method("__init__", []string{"self"}, ast.None()),
		),
		ast.Assign("a", ast.New(ast.Var("Node"))),
		ast.Assign("b", ast.New(ast.Var("Node"))),
		ast.SetField(ast.Var("a"), "next", ast.Var("b")),
		ast.SetField(ast.Var("b"), "value", ast.Num(42)),
		ast.PrintOf(ast.Var("a", "next", "value")),
	)
	out := run(t, program)
	if out != "42\n" {
		t.Fatalf("got %q", out)
	}
}

func TestUndefinedVariableIsError(t *testing.T) {
	ctx := runtime.NewBufferContext()
	ev := New(ctx)
	err := ev.Run(ast.PrintOf(ast.Var("nope")))
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*runtime.UndefinedVariableError); !ok {
		t.Fatalf("expected UndefinedVariableError, got %T: %v", err, err)
	}
}

func TestWrongArityMethodCallIsError(t *testing.T) {
	program := ast.Block(
		ast.Class("C", "",
			ast.Method("f", []string{"self", "x"}, ast.Ret(ast.Var("x"))),
		),
		ast.Assign("c", ast.New(ast.Var("C"))),
		ast.Call(ast.Var("c"), "f"),
	)
	ctx := runtime.NewBufferContext()
	ev := New(ctx)
	if err := ev.Run(program); err == nil {
		t.Fatal("expected error")
	}
}

func TestIncomparableOperandsIsError(t *testing.T) {
	ctx := runtime.NewBufferContext()
	ev := New(ctx)
	err := ev.Run(ast.PrintOf(ast.Cmp(ast.OpEq, ast.Num(1), ast.Str("1"))))
	if err == nil {
		t.Fatal("expected error")
	}
}

// TestNonBoolEqDunderIsError verifies that __eq__/__lt__ results are taken
// as the literal Bool payload, not truthiness-coerced: a class returning a
// nonzero Number from __eq__ must raise an error rather than compare true.
func TestNonBoolEqDunderIsError(t *testing.T) {
	program := ast.Block(
		ast.Class("C", "",
			ast.Method("__eq__", []string{"self", "other"}, ast.Ret(ast.Num(1))),
		),
		ast.Assign("a", ast.New(ast.Var("C"))),
		ast.Assign("b", ast.New(ast.Var("C"))),
		ast.PrintOf(ast.Cmp(ast.OpEq, ast.Var("a"), ast.Var("b"))),
	)
	ctx := runtime.NewBufferContext()
	ev := New(ctx)
	if err := ev.Run(program); err == nil {
		t.Fatal("expected error for non-Bool __eq__ result")
	}
}

func TestNonBoolLtDunderIsError(t *testing.T) {
	program := ast.Block(
		ast.Class("C", "",
			ast.Method("__lt__", []string{"self", "other"}, ast.Ret(ast.Num(1))),
		),
		ast.Assign("a", ast.New(ast.Var("C"))),
		ast.Assign("b", ast.New(ast.Var("C"))),
		ast.PrintOf(ast.Cmp(ast.OpLess, ast.Var("a"), ast.Var("b"))),
	)
	ctx := runtime.NewBufferContext()
	ev := New(ctx)
	if err := ev.Run(program); err == nil {
		t.Fatal("expected error for non-Bool __lt__ result")
	}
}
