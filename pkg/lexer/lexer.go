// Package lexer implements Mython's hand-written tokenizer, including the
// off-side rule that synthesizes INDENT/DEDENT/NEWLINE tokens from leading
// whitespace. It is a strict one-pass, single-character-pushback scanner.
package lexer

import (
	"strings"

	"mython-go/pkg/token"
)

const indentWidth = 2

// Lexer converts a source string into a stream of tokens, retrievable one
// at a time via Current and Next.
type Lexer struct {
	src string
	pos int

	cur token.Token

	level      int // number of indent levels already emitted (P)
	lineSpaces int // leading-space count of the current physical line
}

// New constructs a Lexer positioned before the first token of src and
// immediately scans it, matching the design note that the lexer must
// start as if the previous token were NEWLINE so the first line's
// indentation is synthesized correctly.
func New(src string) (*Lexer, error) {
	l := &Lexer{src: src, cur: token.Simple(token.Newline)}
	if err := l.readLineSpaces(); err != nil {
		return nil, err
	}
	tok, err := l.scan()
	if err != nil {
		return nil, err
	}
	l.cur = tok
	return l, nil
}

// Current returns the most recently scanned token without advancing.
func (l *Lexer) Current() token.Token { return l.cur }

// Next advances the lexer and returns the newly current token.
func (l *Lexer) Next() (token.Token, error) {
	tok, err := l.scan()
	if err != nil {
		return token.Token{}, err
	}
	l.cur = tok
	return l.cur, nil
}

// Expect raises an error unless the current token has kind k.
func (l *Lexer) Expect(k token.Kind) error {
	if l.cur.Kind != k {
		return errorf("expected %s, got %s", k, l.cur.Kind)
	}
	return nil
}

// ExpectToken raises an error unless the current token equals t exactly.
func (l *Lexer) ExpectToken(t token.Token) error {
	if !l.cur.Equal(t) {
		return errorf("expected %s, got %s", t, l.cur)
	}
	return nil
}

// ExpectNext advances and then requires the new current token to have kind k.
func (l *Lexer) ExpectNext(k token.Kind) error {
	if _, err := l.Next(); err != nil {
		return err
	}
	return l.Expect(k)
}

// ExpectNextToken advances and then requires the new current token to equal t.
func (l *Lexer) ExpectNextToken(t token.Token) error {
	if _, err := l.Next(); err != nil {
		return err
	}
	return l.ExpectToken(t)
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// readLineSpaces measures the leading spaces of the physical line starting
// at l.pos, without consuming anything else, and stores the count.
func (l *Lexer) readLineSpaces() error {
	n := 0
	for l.peek() == ' ' {
		l.pos++
		n++
	}
	if n%2 != 0 {
		return errorf("indentation must be a multiple of two spaces, got %d", n)
	}
	l.lineSpaces = n
	return nil
}

// scan is the single-token production step. It mirrors the reference
// lexer's NextToken: comment stripping, NEWLINE synthesis with blank-line
// collapsing, INDENT/DEDENT synthesis (checked on every call, one token at
// a time), EOF handling, and finally literal/identifier/operator scanning.
func (l *Lexer) scan() (token.Token, error) {
	for {
		// Comments extend to, but do not consume, the next newline.
		if l.peek() == '#' {
			for l.peek() != 0 && l.peek() != '\n' {
				l.pos++
			}
		}

		if l.peek() == '\n' {
			l.pos++
			if err := l.readLineSpaces(); err != nil {
				return token.Token{}, err
			}
			if l.cur.Kind == token.Newline {
				// Consecutive newlines collapse into one.
				continue
			}
			return token.Simple(token.Newline), nil
		}

		// A source with no trailing newline leaves lineSpaces holding the
		// last physical line's indentation. Once input is exhausted there
		// is no further line to measure, so treat the rest of input as
		// dedented to level zero. Per spec.md's stream-shape invariant the
		// terminal Newline comes before any EOF-driven Dedents, so that
		// check runs first and only once; after it, the Dedent/Eof checks
		// synthesize the trailing Dedents one per call, exactly as the
		// mid-source Indent/Dedent checks below do for real lines.
		if l.pos >= len(l.src) {
			l.lineSpaces = 0
			if l.cur.Kind != token.Newline && l.cur.Kind != token.Dedent && l.cur.Kind != token.Eof {
				return token.Simple(token.Newline), nil
			}
			if l.level > 0 {
				l.level--
				return token.Simple(token.Dedent), nil
			}
			return token.Simple(token.Eof), nil
		}

		if l.lineSpaces/indentWidth > l.level {
			l.level++
			return token.Simple(token.Indent), nil
		}
		if l.lineSpaces/indentWidth < l.level {
			l.level--
			return token.Simple(token.Dedent), nil
		}

		switch {
		case isDigit(l.peek()):
			return l.readNumber(), nil
		case l.peek() == '\'' || l.peek() == '"':
			return l.readString(l.peek())
		case l.peek() == '_' || isAlpha(l.peek()):
			return l.readIdentifier(), nil
		case strings.IndexByte("!=<>", l.peek()) >= 0:
			return l.readOperator()
		case strings.IndexByte("+-*/:().,", l.peek()) >= 0:
			ch := l.peek()
			l.pos++
			return token.Ch(ch), nil
		case l.peek() == ' ':
			l.pos++
			continue
		default:
			return token.Token{}, errorf("unexpected character %q", string(l.peek()))
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool { return isDigit(b) || isAlpha(b) }

func (l *Lexer) readNumber() token.Token {
	start := l.pos
	for isDigit(l.peek()) {
		l.pos++
	}
	var n int32
	for _, c := range l.src[start:l.pos] {
		n = n*10 + int32(c-'0')
	}
	return token.Num(n)
}

func (l *Lexer) readString(quote byte) (token.Token, error) {
	l.pos++ // consume opening quote
	var b strings.Builder
	for {
		c := l.peek()
		if l.pos >= len(l.src) {
			return token.Token{}, errorf("unterminated string literal")
		}
		if c == '\n' || c == '\r' {
			return token.Token{}, errorf("string literal may not contain a raw newline")
		}
		if c == '\\' {
			l.pos++
			esc := l.peek()
			l.pos++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\'':
				b.WriteByte('\'')
			case '"':
				b.WriteByte('"')
			default:
				return token.Token{}, errorf("unsupported escape sequence \\%c", esc)
			}
			continue
		}
		if c == quote {
			l.pos++
			break
		}
		b.WriteByte(c)
		l.pos++
	}
	return token.Str(b.String()), nil
}

func (l *Lexer) readIdentifier() token.Token {
	start := l.pos
	for isAlnum(l.peek()) || l.peek() == '_' {
		l.pos++
	}
	name := l.src[start:l.pos]
	if kind, ok := token.Keywords[name]; ok {
		return token.Simple(kind)
	}
	return token.Ident(name)
}

func (l *Lexer) readOperator() (token.Token, error) {
	ch := l.peek()
	l.pos++
	switch ch {
	case '=':
		if l.peek() == '=' {
			l.pos++
			return token.Simple(token.Eq), nil
		}
		return token.Ch('='), nil
	case '!':
		if l.peek() == '=' {
			l.pos++
			return token.Simple(token.NotEq), nil
		}
		return token.Token{}, errorf("malformed operator: lone '!'")
	case '<':
		if l.peek() == '=' {
			l.pos++
			return token.Simple(token.LessOrEq), nil
		}
		return token.Ch('<'), nil
	case '>':
		if l.peek() == '=' {
			l.pos++
			return token.Simple(token.GreaterOrEq), nil
		}
		return token.Ch('>'), nil
	default:
		return token.Token{}, errorf("malformed operator starting with %q", string(ch))
	}
}
