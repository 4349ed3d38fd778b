// Package runtime implements Mython's value model: tagged values, classes
// with flattened parent method tables, instances, and the flat
// call-frame environment. It has no notion of how AST nodes execute —
// that lives in pkg/interpreter — so it only depends on pkg/ast for the
// shape of a method body, never on the evaluator itself.
package runtime

import (
	"fmt"

	"mython-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindNumber
	KindString
	KindClass
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindBool:
		return "bool"
	case KindNumber:
		return "int"
	case KindString:
		return "str"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all Mython runtime values.
type Value interface {
	Kind() Kind
}

type NoneValue struct{}

func (NoneValue) Kind() Kind { return KindNone }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NumberValue struct {
	Val int32
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// ClassValue is an owning handle to a Class: classes live in the
// environment that defines them and outlive every instance built from
// them, so a plain pointer is all the "handle" needs to be.
type ClassValue struct {
	Class *Class
}

func (v ClassValue) Kind() Kind { return KindClass }

// InstanceValue is a handle to an Instance. When it is bound to "self"
// inside a call frame it is a non-owning handle in spirit: nothing about
// the call frame keeps the instance alive beyond what already held it
// (the caller's owning reference), and the frame itself is discarded the
// moment the call returns.
type InstanceValue struct {
	Instance *Instance
}

func (v InstanceValue) Kind() Kind { return KindInstance }

// Method is an immutable, named, ordered-parameter function body owned by
// the Class that declares it. Params[0] is the receiver's binding name
// (conventionally "self"); Params[1:] are the callable formal parameters
// used for arity matching against call-site arguments, which never
// include the receiver.
type Method struct {
	Name   string
	Params []string
	Body   ast.Node
}

// Arity is the number of callable parameters, excluding the receiver.
func (m *Method) Arity() int {
	if len(m.Params) == 0 {
		return 0
	}
	return len(m.Params) - 1
}

// ReceiverName is the binding name used for the receiver inside the
// method's call frame.
func (m *Method) ReceiverName() string {
	if len(m.Params) == 0 {
		return "self"
	}
	return m.Params[0]
}

// Class holds a flattened method table: built once, at class-construction
// time, by copying the parent's table and overlaying the class's own
// methods. Later mutation of the parent is therefore invisible to
// children, matching the immutability invariant in the spec.
type Class struct {
	Name    string
	Parent  *Class
	Methods map[string]*Method
}

// NewClass builds a Class by flattening parent (nil for no base class)
// and overlaying own.
func NewClass(name string, parent *Class, own []*Method) *Class {
	methods := make(map[string]*Method)
	if parent != nil {
		for name, m := range parent.Methods {
			methods[name] = m
		}
	}
	for _, m := range own {
		methods[m.Name] = m
	}
	return &Class{Name: name, Parent: parent, Methods: methods}
}

// Resolve looks up a method by name in the flattened table.
func (c *Class) Resolve(name string) (*Method, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Instance is a live Mython object: a non-owning reference to its class
// (classes are registered in an environment before any instance can be
// built from them, so the class always outlives its instances) plus a
// field environment that grows lazily on first assignment to self.x.
type Instance struct {
	Class  *Class
	Fields *Environment
}

// NewInstance allocates an instance with an empty field environment.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: NewEnvironment()}
}
