// Package pp implements an Oppen-style streaming pretty-printing engine: a
// line-breaking algorithm that turns an unbounded stream of formatting
// tokens (String, Break, Begin, End) into line-wrapped text with bounded
// lookahead and linear time, regardless of how deeply the input nests.
//
// The engine never looks at a syntax tree. A driver (not part of this
// package) walks whatever structure it's formatting and calls the token
// methods, or the shorthand façade (Word, Space, IBox, CBox, End,
// TrailingComma), in order; the engine decides, as late as it can while
// still bounding memory, whether each Break fires as a space or a newline.
package pp

import (
	"strings"

	"github.com/jcorbin/pp/internal/ring"
)

const (
	margin       = 79     // target line width
	minSpace     = 60     // minimum usable space on a deeply indented line
	sizeInfinity = 0xFFFF // any value comfortably exceeding margin
)

// Printer is the engine described in the package doc comment. It is a
// single-owner, single-threaded state machine: not safe for concurrent use
// by multiple goroutines, and exclusively owned by its caller from
// construction through Eof.
type Printer struct {
	out   strings.Builder
	space int

	buf                ring.Buffer[bufEntry]
	leftTotal          int
	rightTotal         int
	scanStack          []int // absolute indices into buf, oldest-at-front
	printStack         []printFrame
	indent             int
	pendingIndentation int

	widthFunc WidthFunc
}

// NewPrinter returns an empty engine, ready to accept token operations.
func NewPrinter() *Printer {
	return &Printer{
		space:     margin,
		widthFunc: defaultWidthFunc,
	}
}

// SetWidthFunc overrides how String token width is measured. The default is
// runewidth.StringWidth (see width.go). Must be called before any token is
// scanned; changing it mid-stream would make already-buffered sizes
// inconsistent with newly computed ones.
func (p *Printer) SetWidthFunc(fn WidthFunc) {
	p.widthFunc = fn
}

// ScanString buffers (or, if no block is open, immediately emits) a literal
// run of text.
func (p *Printer) ScanString(text string) {
	if len(p.scanStack) == 0 {
		p.printString(text)
		return
	}
	size := p.widthFunc(text)
	p.buf.Push(bufEntry{tok: token{kind: stringTok, text: text}, size: size})
	p.rightTotal += size
	p.checkStream()
}

// ScanBegin opens a block with the given overflow offset and break policy.
func (p *Printer) ScanBegin(offset int, breaks Breaks) {
	if len(p.scanStack) == 0 {
		// Rebase between independent top-level token streams so the
		// running totals don't grow without bound across a long driver
		// session.
		p.leftTotal, p.rightTotal = 1, 1
		p.buf.Clear()
	}
	idx := p.buf.Push(bufEntry{
		tok:  token{kind: beginTok, offset: offset, breaks: breaks},
		size: -p.rightTotal,
	})
	p.scanStack = append(p.scanStack, idx)
}

// ScanEnd closes the innermost open block.
func (p *Printer) ScanEnd() {
	if len(p.scanStack) == 0 {
		p.printEnd()
		return
	}

	if p.buf.Len() >= 1 {
		if last := p.buf.Last(); last.tok.kind == breakTok {
			if p.buf.Len() >= 2 && p.buf.SecondLast().tok.kind == beginTok {
				// Empty block: the Begin/Break pair is peeled off entirely.
				p.buf.PopLast()
				p.buf.PopLast()
				p.scanStack = p.scanStack[:len(p.scanStack)-2]
				p.rightTotal -= last.tok.blankSpace
				return
			}
			if last.tok.ifNonempty {
				// Suppress the final break immediately before a close.
				p.buf.PopLast()
				p.scanStack = p.scanStack[:len(p.scanStack)-1]
				p.rightTotal -= last.tok.blankSpace
				// NOTE: only rightTotal is adjusted here, never leftTotal —
				// the elided Break was never flushed to output, so there is
				// nothing for leftTotal to account for (the empty-block case
				// above likewise). See scenario S6 in pp/engine_test.go and
				// TestInvariant_emptyBlockElisionLeavesLeftTotalAlone in
				// pp/invariants_test.go.
			}
		}
	}

	idx := p.buf.Push(bufEntry{tok: token{kind: endTok}, size: -1})
	p.scanStack = append(p.scanStack, idx)
}

// ScanBreak buffers a break-opportunity: blankSpace spaces if the enclosing
// block fits, else a newline indented by the block's indent plus offset.
// trailingComma prepends a literal comma when the break fires as a newline;
// ifNonempty marks the break as elidable by ScanEnd's peephole rule when it
// turns out to be the last thing before a close.
func (p *Printer) ScanBreak(offset, blankSpace int, trailingComma, ifNonempty bool) {
	if len(p.scanStack) == 0 {
		p.leftTotal, p.rightTotal = 1, 1
		p.buf.Clear()
	} else {
		p.checkStack(0)
	}
	idx := p.buf.Push(bufEntry{
		tok: token{
			kind:          breakTok,
			offset:        offset,
			blankSpace:    blankSpace,
			trailingComma: trailingComma,
			ifNonempty:    ifNonempty,
		},
		size: -p.rightTotal,
	})
	p.scanStack = append(p.scanStack, idx)
	p.rightTotal += blankSpace
}

// Offset mutates the most recently buffered Break's offset by delta. A
// no-op when the last token is a Begin. Any other last token is a
// programmer error.
func (p *Printer) Offset(delta int) {
	last := p.buf.Last()
	switch last.tok.kind {
	case breakTok:
		last.tok.offset += delta
	case beginTok:
		// no-op
	default:
		panic("pp: Offset called when the last token is not Break or Begin")
	}
}

// checkStack resolves pending scan_stack entries belonging to completed
// groups, starting at the given nesting depth relative to the break/begin
// that triggered the call.
func (p *Printer) checkStack(depth int) {
	for len(p.scanStack) > 0 {
		idx := p.scanStack[len(p.scanStack)-1]
		entry := p.buf.At(idx)
		switch entry.tok.kind {
		case beginTok:
			if depth == 0 {
				return
			}
			p.scanStack = p.scanStack[:len(p.scanStack)-1]
			entry.size += p.rightTotal
			depth--
		case endTok:
			p.scanStack = p.scanStack[:len(p.scanStack)-1]
			entry.size = 1
			depth++
		case breakTok:
			p.scanStack = p.scanStack[:len(p.scanStack)-1]
			entry.size += p.rightTotal
			if depth == 0 {
				return
			}
		default:
			panic("pp: scan_stack referenced a String token")
		}
	}
}

// checkStream drains resolved entries while the unflushed width exceeds the
// remaining space, forcing the oldest unresolved entry to sizeInfinity if it
// is the only thing standing in the way of a decision. This is the bound
// that keeps buffered width at O(margin): the buffer never holds more than
// space+1 columns of as-yet-unresolved text.
func (p *Printer) checkStream() {
	for p.rightTotal-p.leftTotal > p.space {
		if len(p.scanStack) > 0 && p.scanStack[0] == p.buf.IndexOfFirst() {
			p.scanStack = p.scanStack[1:]
			p.buf.First().size = sizeInfinity
		}

		p.advanceLeft()

		if p.buf.IsEmpty() {
			break
		}
	}
}

// advanceLeft drains resolved entries (size >= 0) from the front of the
// buffer to output, in order.
func (p *Printer) advanceLeft() {
	for p.buf.First().size >= 0 {
		entry := p.buf.PopFirst()

		switch entry.tok.kind {
		case stringTok:
			p.leftTotal += entry.size
			p.printString(entry.tok.text)
		case breakTok:
			p.leftTotal += entry.tok.blankSpace
			p.printBreak(entry.tok, entry.size)
		case beginTok:
			p.printBegin(entry.tok, entry.size)
		case endTok:
			p.printEnd()
		}

		if p.buf.IsEmpty() {
			break
		}
	}
}

// getTop returns the innermost print frame, treating an empty print stack
// as an always-broken, inconsistent outer frame.
func (p *Printer) getTop() printFrame {
	if len(p.printStack) == 0 {
		return printFrame{fits: false, breaks: Inconsistent}
	}
	return p.printStack[len(p.printStack)-1]
}

func (p *Printer) printBegin(tok token, size int) {
	if debugEnabled {
		if tok.breaks == Consistent {
			p.out.WriteRune('«')
		} else {
			p.out.WriteRune('‹')
		}
	}
	if size > p.space {
		p.printStack = append(p.printStack, printFrame{fits: false, breaks: tok.breaks, savedIndent: p.indent})
		indent := p.indent + tok.offset
		if indent < 0 {
			panic("pp: block offset drove indent negative")
		}
		p.indent = indent
	} else {
		p.printStack = append(p.printStack, printFrame{fits: true, breaks: tok.breaks})
	}
}

func (p *Printer) printEnd() {
	if len(p.printStack) == 0 {
		panic("pp: ScanEnd with no matching ScanBegin")
	}
	frame := p.printStack[len(p.printStack)-1]
	p.printStack = p.printStack[:len(p.printStack)-1]
	if !frame.fits {
		p.indent = frame.savedIndent
	}
	if debugEnabled {
		if frame.breaks == Consistent {
			p.out.WriteRune('»')
		} else {
			p.out.WriteRune('›')
		}
	}
}

func (p *Printer) printBreak(tok token, size int) {
	top := p.getTop()
	fits := top.fits || (top.breaks == Inconsistent && size <= p.space)

	if fits {
		p.pendingIndentation += tok.blankSpace
		p.space -= tok.blankSpace
		if debugEnabled {
			p.out.WriteRune('·')
		}
		return
	}

	if tok.trailingComma {
		p.out.WriteByte(',')
	}
	if debugEnabled {
		p.out.WriteRune('·')
	}
	p.out.WriteByte('\n')

	indent := p.indent + tok.offset
	if indent < 0 {
		panic("pp: break offset drove indent negative")
	}
	p.pendingIndentation = indent
	p.space = max(margin-indent, minSpace)
}

func (p *Printer) printString(text string) {
	if p.pendingIndentation > 0 {
		p.out.WriteString(strings.Repeat(" ", p.pendingIndentation))
		p.pendingIndentation = 0
	}
	p.out.WriteString(text)
	p.space -= p.widthFunc(text)
}

// Eof flushes any residual buffered tokens and returns the final formatted
// string. The Printer must not be used again afterward: the scan stack,
// print stack, and buffer are all guaranteed empty at return.
func (p *Printer) Eof() string {
	if len(p.scanStack) > 0 {
		p.checkStack(0)
		p.advanceLeft()
	}
	return p.out.String()
}
