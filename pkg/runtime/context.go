package runtime

import (
	"bytes"
	"fmt"
	"io"
)

// Context is the sole interface between the evaluator and its host: a
// writable text stream that Print, and transitively instance __str__
// calls via Stringify, write to.
type Context interface {
	Output() io.Writer
}

// StreamContext wraps an arbitrary io.Writer, typically os.Stdout in the
// CLI driver.
type StreamContext struct {
	w io.Writer
}

// NewStreamContext wraps w as a Context.
func NewStreamContext(w io.Writer) *StreamContext { return &StreamContext{w: w} }

func (c *StreamContext) Output() io.Writer { return c.w }

// BufferContext captures output in memory; the null/capturing context
// used by tests and fixtures.
type BufferContext struct {
	buf bytes.Buffer
}

// NewBufferContext returns a Context that records everything written to it.
func NewBufferContext() *BufferContext { return &BufferContext{} }

func (c *BufferContext) Output() io.Writer { return &c.buf }

// String returns everything written so far.
func (c *BufferContext) String() string { return c.buf.String() }

// IsTruthy implements the totality property from the spec: it terminates
// for every value with no side effects. True iff v is Bool(true), a
// non-zero Number, or a non-empty String.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case BoolValue:
		return val.Val
	case NumberValue:
		return val.Val != 0
	case StringValue:
		return val.Val != ""
	default:
		return false
	}
}

// PrimitiveString renders v the way Print does, with no instance dispatch: that
// requires calling user-defined __str__, which lives in pkg/interpreter.
// PrimitiveString is used for values that are never Instance (the
// fallback opaque-identifier case for an instance without __str__ is
// also handled there).
func PrimitiveString(v Value) string {
	switch val := v.(type) {
	case NoneValue:
		return "None"
	case BoolValue:
		if val.Val {
			return "True"
		}
		return "False"
	case NumberValue:
		return fmt.Sprintf("%d", val.Val)
	case StringValue:
		return val.Val
	case ClassValue:
		return fmt.Sprintf("<class %s>", val.Class.Name)
	default:
		return fmt.Sprintf("%v", v)
	}
}
