package pp

// Word emits a literal run of text. Shorthand for ScanString.
func (p *Printer) Word(s string) {
	p.ScanString(s)
}

// Space emits a break that, when it fires, becomes a single space; when it
// doesn't, a newline plus indentation.
func (p *Printer) Space() {
	p.ScanBreak(0, 1, false, false)
}

// Zerobreak emits a break with no blank space when it fits, useful right
// after an opening delimiter.
func (p *Printer) Zerobreak() {
	p.ScanBreak(0, 0, false, false)
}

// IBox opens an inconsistently-broken block: each break inside decides
// locally whether to fire as a newline.
func (p *Printer) IBox(indent int) {
	p.ScanBegin(indent, Inconsistent)
}

// CBox opens a consistently-broken block: if any break inside fires as a
// newline, every sibling break at the same level does too.
func (p *Printer) CBox(indent int) {
	p.ScanBegin(indent, Consistent)
}

// End closes the innermost open block.
func (p *Printer) End() {
	p.ScanEnd()
}

// TrailingComma emits a comma appropriate for a list element. When isLast is
// true, it emits a break that contributes a comma only if it fires as a
// newline (so a one-line list has no trailing comma); otherwise it emits a
// literal comma followed by an ordinary space-break.
func (p *Printer) TrailingComma(isLast bool) {
	if isLast {
		p.ScanBreak(0, 0, true, false)
	} else {
		p.Word(",")
		p.Space()
	}
}
