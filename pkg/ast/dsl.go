package ast

// Construction helpers used by tests and by pkg/parser to keep call sites
// terse, mirroring the teacher's ast/dsl.go shorthand constructors.

func Num(v int32) *NumericConst  { return &NumericConst{Value: v} }
func Str(v string) *StringConst  { return &StringConst{Value: v} }
func Bool(v bool) *BoolConst     { return &BoolConst{Value: v} }
func None() *NoneLiteral         { return &NoneLiteral{} }
func Var(chain ...string) *VariableValue {
	return &VariableValue{Chain: chain}
}
func Assign(name string, rhs Node) *Assignment {
	return &Assignment{Name: name, Rhs: rhs}
}
func SetField(target *VariableValue, field string, rhs Node) *FieldAssignment {
	return &FieldAssignment{Target: target, Field: field, Rhs: rhs}
}
func PrintOf(args ...Node) *Print { return &Print{Args: args} }
func Str2(arg Node) *Stringify    { return &Stringify{Arg: arg} }
func Call(obj Node, name string, args ...Node) *MethodCall {
	return &MethodCall{Obj: obj, Name: name, Args: args}
}
func New(class Node, args ...Node) *NewInstance {
	return &NewInstance{Class: class, Args: args}
}
func AddOf(l, r Node) *Add   { return &Add{Lhs: l, Rhs: r} }
func SubOf(l, r Node) *Sub   { return &Sub{Lhs: l, Rhs: r} }
func MulOf(l, r Node) *Mult  { return &Mult{Lhs: l, Rhs: r} }
func DivOf(l, r Node) *Div   { return &Div{Lhs: l, Rhs: r} }
func OrOf(l, r Node) *Or     { return &Or{Lhs: l, Rhs: r} }
func AndOf(l, r Node) *And   { return &And{Lhs: l, Rhs: r} }
func NotOf(arg Node) *Not    { return &Not{Arg: arg} }
func Cmp(op CompareOp, l, r Node) *Comparison {
	return &Comparison{Op: op, Lhs: l, Rhs: r}
}
func Block(stmts ...Node) *Compound { return &Compound{Statements: stmts} }
func Ret(expr Node) *Return         { return &Return{Expr: expr} }
func If(cond, then, els Node) *IfElse {
	return &IfElse{Cond: cond, Then: then, Else: els}
}
func Method(name string, params []string, body Node) *MethodDef {
	return &MethodDef{Name: name, Params: params, Body: body}
}
func Class(name, parent string, methods ...*MethodDef) *ClassDefinition {
	return &ClassDefinition{Name: name, Parent: parent, Methods: methods}
}
