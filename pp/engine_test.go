package pp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/pp/pp"
)

const indent = 4

// S1: a block that fits entirely on one line prints its breaks as spaces.
func TestPrinter_S1_oneLineFit(t *testing.T) {
	p := pp.NewPrinter()
	p.CBox(indent)
	p.Word("a")
	p.Space()
	p.Word("b")
	p.End()
	assert.Equal(t, "a b", p.Eof())
}

// S2: a string too long to fit forces a break via the sizeInfinity sentinel,
// even though the string itself is never reconsidered as a group.
func TestPrinter_S2_forcedBreak(t *testing.T) {
	aaaa := strings.Repeat("a", 90)

	p := pp.NewPrinter()
	p.CBox(indent)
	p.Word(aaaa)
	p.Space()
	p.Word("b")
	p.End()

	want := aaaa + "\n    b"
	assert.Equal(t, want, p.Eof())
}

// S3: a Consistent block is all-or-none — either every break inside fits,
// or every break inside fires as a newline.
func TestPrinter_S3_consistentAllOrNone(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		p := pp.NewPrinter()
		p.CBox(indent)
		p.Word("x")
		p.Space()
		p.Word("y")
		p.Space()
		p.Word("z")
		p.End()
		assert.Equal(t, "x y z", p.Eof())
	})

	t.Run("overflows", func(t *testing.T) {
		x := strings.Repeat("x", 30)
		y := strings.Repeat("y", 30)
		z := strings.Repeat("z", 30)

		p := pp.NewPrinter()
		p.CBox(indent)
		p.Word(x)
		p.Space()
		p.Word(y)
		p.Space()
		p.Word(z)
		p.End()

		want := x + "\n    " + y + "\n    " + z
		assert.Equal(t, want, p.Eof())
	})
}

// S4: an Inconsistent block lets each break decide locally: the first break
// can fit while a later one in the same block doesn't.
func TestPrinter_S4_inconsistentLocalChoice(t *testing.T) {
	b := strings.Repeat("b", 50)
	c := strings.Repeat("c", 30)

	p := pp.NewPrinter()
	p.IBox(indent)
	p.Word("a")
	p.Space()
	p.Word(b)
	p.Space()
	p.Word(c)
	p.End()

	want := "a " + b + "\n    " + c
	assert.Equal(t, want, p.Eof())
}

// S5: TrailingComma only materializes a comma when the break it rides on
// fires as a newline.
func TestPrinter_S5_trailingCommaOnWrap(t *testing.T) {
	printList := func(elems []string) string {
		p := pp.NewPrinter()
		p.CBox(indent)
		for i, e := range elems {
			p.Word(e)
			p.TrailingComma(i == len(elems)-1)
		}
		p.End()
		return p.Eof()
	}

	t.Run("fits, no trailing comma", func(t *testing.T) {
		got := printList([]string{"a", "b", "c"})
		assert.Equal(t, "a, b, c", got)
	})

	t.Run("overflows, trailing comma before final newline", func(t *testing.T) {
		long := strings.Repeat("x", 30)
		got := printList([]string{long, long, long})
		// the final element's break still fires (Consistent block, broken),
		// contributing a comma and a newline; nothing follows it, so the
		// indentation it set up is never flushed to output.
		want := long + ",\n    " + long + ",\n    " + long + ",\n"
		assert.Equal(t, want, got)
	})
}

// S6: an empty block (Begin immediately followed by a Break then End) is
// elided entirely by the scan_end peephole rule.
func TestPrinter_S6_emptyBlockElision(t *testing.T) {
	p := pp.NewPrinter()
	p.CBox(indent)
	p.Zerobreak()
	p.End()
	assert.Equal(t, "", p.Eof())
}

// Offset on a trailing Begin is a documented no-op, not a panic.
func TestPrinter_Offset_noopOnBegin(t *testing.T) {
	p := pp.NewPrinter()
	p.CBox(indent)
	assert.NotPanics(t, func() { p.Offset(-indent) })
	p.Word("a")
	p.End()
	assert.Equal(t, "a", p.Eof())
}

// Offset on a trailing Break adjusts where that break's newline indents to.
func TestPrinter_Offset_adjustsBreakIndent(t *testing.T) {
	x := strings.Repeat("x", 30)
	y := strings.Repeat("y", 30)
	z := strings.Repeat("z", 30)

	p := pp.NewPrinter()
	p.CBox(indent)
	p.Word(x)
	p.Space()
	p.Offset(4) // this break now indents 8, not 4
	p.Word(y)
	p.Space()
	p.Word(z)
	p.End()

	want := x + "\n        " + y + "\n    " + z
	assert.Equal(t, want, p.Eof())
}

// A String/End last token is a programmer error for Offset.
func TestPrinter_Offset_panicsOnStringOrEnd(t *testing.T) {
	t.Run("after Word", func(t *testing.T) {
		p := pp.NewPrinter()
		p.CBox(indent)
		p.Word("a")
		assert.Panics(t, func() { p.Offset(1) })
	})
	t.Run("after End", func(t *testing.T) {
		p := pp.NewPrinter()
		p.CBox(indent)
		p.Word("a")
		p.End()
		assert.Panics(t, func() { p.Offset(1) })
	})
}

// Unbalanced End with an empty scan stack and no open print frame panics.
func TestPrinter_unbalancedEnd_panics(t *testing.T) {
	p := pp.NewPrinter()
	assert.Panics(t, func() { p.End() })
}

// Nested nontrivial structure: a list inside a list, to exercise the ring
// buffer and scan stack with more than one live Begin at once.
func TestPrinter_nestedBlocks(t *testing.T) {
	p := pp.NewPrinter()
	p.CBox(indent)
	p.Word("[")
	p.Zerobreak()
	p.CBox(indent)
	p.Word("1")
	p.TrailingComma(false)
	p.Word("2")
	p.TrailingComma(true)
	p.End()
	p.Zerobreak()
	p.Offset(-indent)
	p.Word("]")
	p.End()

	assert.Equal(t, "[1, 2]", p.Eof())
}

// SetWidthFunc lets a driver treat, e.g., every rune as width 1 regardless
// of runewidth's double-width handling, or otherwise override the default.
func TestPrinter_SetWidthFunc(t *testing.T) {
	p := pp.NewPrinter()
	p.SetWidthFunc(func(s string) int { return 0 }) // everything "free"

	long := strings.Repeat("q", 1000)
	p.CBox(indent)
	p.Word(long)
	p.Space()
	p.Word(long)
	p.End()

	// with a zero-cost width func nothing ever overflows the margin.
	assert.Equal(t, long+" "+long, p.Eof())
}
