package lexer

import (
	"testing"

	"mython-go/pkg/token"
)

func tokens(t *testing.T, src string) []token.Token {
	t.Helper()
	l, err := New(src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out []token.Token
	for {
		out = append(out, l.Current())
		if l.Current().Kind == token.Eof {
			break
		}
		if _, err := l.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	return out
}

func assertKinds(t *testing.T, src string, want []token.Kind) {
	t.Helper()
	got := tokens(t, src)
	if len(got) != len(want) {
		t.Fatalf("%q: got %d tokens %v, want %d kinds %v", src, len(got), got, len(want), want)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("%q: token %d = %s, want %s", src, i, got[i], k)
		}
	}
}

func TestSimpleAssignmentAndPrint(t *testing.T) {
	assertKinds(t, "x = 1\nprint x\n", []token.Kind{
		token.Id, token.Char, token.Number, token.Newline,
		token.Print, token.Id, token.Newline, token.Eof,
	})
}

func TestIndentDedentAroundBlock(t *testing.T) {
	src := "if x:\n  print 1\nprint 2\n"
	got := tokens(t, src)
	want := []token.Kind{
		token.If, token.Id, token.Char, token.Newline,
		token.Indent, token.Print, token.Number, token.Newline,
		token.Dedent, token.Print, token.Number, token.Newline, token.Eof,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("token %d = %s, want %s (full: %v)", i, got[i], k, got)
		}
	}
}

func TestNestedIndentEmitsOneLevelAtATime(t *testing.T) {
	src := "class A:\n  def f(self):\n    return 1\n"
	got := tokens(t, src)
	var indents, dedents int
	for _, tk := range got {
		switch tk.Kind {
		case token.Indent:
			indents++
		case token.Dedent:
			dedents++
		}
	}
	if indents != 2 || dedents != 2 {
		t.Fatalf("expected 2 indents and 2 dedents, got %d/%d (%v)", indents, dedents, got)
	}
}

func TestOddIndentationIsAnError(t *testing.T) {
	l, err := New("if x:\n   print 1\n")
	if err != nil {
		return
	}
	for l.Current().Kind != token.Eof {
		if _, nerr := l.Next(); nerr != nil {
			return
		}
	}
	t.Fatalf("expected odd-indentation error")
}

func TestBlankLinesDoNotDuplicateNewlines(t *testing.T) {
	got := tokens(t, "x = 1\n\n\ny = 2\n")
	for i := 0; i < len(got)-1; i++ {
		if got[i].Kind == token.Newline && got[i+1].Kind == token.Newline {
			t.Fatalf("two NEWLINEs in a row at %d: %v", i, got)
		}
	}
}

func TestCommentOnlyLineStillEmitsNewline(t *testing.T) {
	got := tokens(t, "x = 1\n# a comment\ny = 2\n")
	count := 0
	for _, tk := range got {
		if tk.Kind == token.Newline {
			count++
		}
	}
	if count < 2 {
		t.Fatalf("expected at least 2 NEWLINE tokens, got %v", got)
	}
}

func TestStringEscapes(t *testing.T) {
	got := tokens(t, "'a\\nb\\t\\'c\\\"'\n")
	if got[0].Kind != token.String || got[0].Str != "a\nb\t'c\"" {
		t.Fatalf("got %v", got[0])
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	if _, err := New("'abc\n"); err == nil {
		t.Fatalf("expected error for raw newline in string")
	}
	if _, err := New("'abc"); err == nil {
		t.Fatalf("expected error for end of input before closing quote")
	}
}

func TestTwoCharOperators(t *testing.T) {
	assertKinds(t, "a == b != c <= d >= e\n", []token.Kind{
		token.Id, token.Eq, token.Id, token.NotEq, token.Id,
		token.LessOrEq, token.Id, token.GreaterOrEq, token.Id,
		token.Newline, token.Eof,
	})
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	got := tokens(t, "class Return returnValue\n")
	if got[0].Kind != token.Class {
		t.Fatalf("want Class, got %v", got[0])
	}
	if got[1].Kind != token.Id || got[1].Str != "Return" {
		t.Fatalf("want Id(Return), got %v", got[1])
	}
	if got[2].Kind != token.Id || got[2].Str != "returnValue" {
		t.Fatalf("want Id(returnValue), got %v", got[2])
	}
}

func TestUnknownCharacterIsError(t *testing.T) {
	_, err := New("x = @\n")
	if err != nil {
		return
	}
	l, _ := New("x = @\n")
	for {
		tok := l.Current()
		if tok.Kind == token.Eof {
			t.Fatalf("expected lexer error for '@', got clean EOF")
		}
		if _, err := l.Next(); err != nil {
			return
		}
	}
}

func TestTrailingDedentsSynthesizedWithoutFinalNewline(t *testing.T) {
	src := "if x:\n  print 1"
	got := tokens(t, src)
	want := []token.Kind{
		token.If, token.Id, token.Char, token.Newline,
		token.Indent, token.Print, token.Number,
		token.Newline, token.Dedent, token.Eof,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want kinds %v", got, want)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("token %d = %s, want %s (full: %v)", i, got[i], k, got)
		}
	}
	var dedents int
	for _, tk := range got {
		if tk.Kind == token.Dedent {
			dedents++
		}
	}
	if dedents != 1 {
		t.Fatalf("expected 1 DEDENT synthesized at EOF, got %d (%v)", dedents, got)
	}
	last := got[len(got)-1]
	if last.Kind != token.Eof {
		t.Fatalf("expected trailing EOF, got %v", got)
	}
}

func TestEofSequenceAfterDedent(t *testing.T) {
	got := tokens(t, "if x:\n  print 1\n")
	last := got[len(got)-1]
	if last.Kind != token.Eof {
		t.Fatalf("expected trailing EOF, got %v", got)
	}
	secondLast := got[len(got)-2]
	if secondLast.Kind != token.Dedent {
		t.Fatalf("expected DEDENT right before EOF, got %v", got)
	}
}
