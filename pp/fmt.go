package pp

import (
	"fmt"
	"io"
)

// Format writes a textual representation of the receiver, for improved
// fmt.Printf display while debugging a driver. Produces a verbose
// "<Kind ...>" form when formatted with "%+v", a terse form otherwise.
func (tok token) Format(f fmt.State, verb rune) {
	if f.Flag('+') {
		switch tok.kind {
		case stringTok:
			fmt.Fprintf(f, "<String %q>", tok.text)
		case breakTok:
			fmt.Fprintf(f, "<Break offset=%v blank=%v comma=%v ifNonempty=%v>",
				tok.offset, tok.blankSpace, tok.trailingComma, tok.ifNonempty)
		case beginTok:
			fmt.Fprintf(f, "<Begin offset=%v breaks=%v>", tok.offset, tok.breaks)
		case endTok:
			io.WriteString(f, "<End>")
		}
		return
	}

	switch tok.kind {
	case stringTok:
		fmt.Fprintf(f, "String(%q)", tok.text)
	case breakTok:
		io.WriteString(f, "Break")
	case beginTok:
		fmt.Fprintf(f, "Begin(%v)", tok.breaks)
	case endTok:
		io.WriteString(f, "End")
	}
	_ = verb
}

// Format writes a textual representation of the receiver print frame.
func (pf printFrame) Format(f fmt.State, _ rune) {
	if pf.fits {
		fmt.Fprintf(f, "Fits(%v)", pf.breaks)
	} else {
		fmt.Fprintf(f, "Broken(indent=%v, %v)", pf.savedIndent, pf.breaks)
	}
}
