package main

import "github.com/jcorbin/pp/pp"

// indentWidth is the per-level offset the façade applies when a list
// doesn't fit on one line.
const indentWidth = 2

// printNode walks a toy S-expression and drives the pretty-printing façade
// to format it, standing in for the real syntax-tree walker a production
// formatter would have. A list prints as "(child child ...)",
// consistently broken: either every child lands on its own line, or the
// whole list stays on one.
func printNode(p *pp.Printer, n node) {
	if !n.isList() {
		p.Word(n.atom)
		return
	}

	p.Word("(")
	p.CBox(indentWidth)
	p.Zerobreak()
	for i, child := range n.children {
		printNode(p, child)
		if i < len(n.children)-1 {
			p.Space()
		}
	}
	p.Zerobreak()
	p.Offset(-indentWidth)
	p.End()
	p.Word(")")
}

// format renders a parsed S-expression using the given width metric
// override (nil keeps the default, runewidth.StringWidth).
func format(n node, widthFunc pp.WidthFunc) string {
	p := pp.NewPrinter()
	if widthFunc != nil {
		p.SetWidthFunc(widthFunc)
	}
	printNode(p, n)
	return p.Eof()
}
