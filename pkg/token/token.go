// Package token defines the lexical token alphabet produced by pkg/lexer
// and consumed by pkg/parser.
package token

import "fmt"

// Kind discriminates the Token variants. Number, Id, String, and Char carry
// a payload; the rest are nullary.
type Kind int

const (
	Number Kind = iota
	Id
	String
	Char

	Class
	Return
	If
	Else
	Def
	Print
	And
	Or
	Not
	Eq
	NotEq
	LessOrEq
	GreaterOrEq
	None
	True
	False

	Newline
	Indent
	Dedent
	Eof
)

var kindNames = map[Kind]string{
	Number: "Number", Id: "Id", String: "String", Char: "Char",
	Class: "class", Return: "return", If: "if", Else: "else", Def: "def",
	Print: "print", And: "and", Or: "or", Not: "not",
	Eq: "==", NotEq: "!=", LessOrEq: "<=", GreaterOrEq: ">=",
	None: "None", True: "True", False: "False",
	Newline: "NEWLINE", Indent: "INDENT", Dedent: "DEDENT", Eof: "EOF",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved identifiers to their keyword Kind.
var Keywords = map[string]Kind{
	"class":  Class,
	"return": Return,
	"if":     If,
	"else":   Else,
	"def":    Def,
	"print":  Print,
	"and":    And,
	"or":     Or,
	"not":    Not,
	"None":   None,
	"True":   True,
	"False":  False,
}

// Token is a tagged union: Kind identifies the variant, and exactly one of
// the payload fields is meaningful depending on Kind.
type Token struct {
	Kind    Kind
	Num     int32
	Str     string // used by both Id and String
	ChValue byte   // used by Char
}

// Number-free constructors keep call sites in the lexer and tests terse.

func Num(n int32) Token        { return Token{Kind: Number, Num: n} }
func Ident(name string) Token  { return Token{Kind: Id, Str: name} }
func Str(s string) Token       { return Token{Kind: String, Str: s} }
func Ch(c byte) Token          { return Token{Kind: Char, ChValue: c} }
func Simple(k Kind) Token      { return Token{Kind: k} }

// Equal reports whether two tokens have the same tag and, for valued
// variants, the same payload.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Number:
		return t.Num == other.Num
	case Id, String:
		return t.Str == other.Str
	case Char:
		return t.ChValue == other.ChValue
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%d)", t.Num)
	case Id:
		return fmt.Sprintf("Id(%q)", t.Str)
	case String:
		return fmt.Sprintf("String(%q)", t.Str)
	case Char:
		return fmt.Sprintf("Char(%q)", string(t.ChValue))
	default:
		return t.Kind.String()
	}
}
