package pp

// Breaks selects how the breaks within a block are resolved once the block
// doesn't fit on one line.
type Breaks int

// Break policies for a Begin block.
const (
	// Inconsistent lets each Break within the block decide locally whether
	// it needs to fire as a newline.
	Inconsistent Breaks = iota
	// Consistent forces every Break at the block's own nesting level to
	// fire as a newline as soon as any one of them does.
	Consistent
)

// String renders a Breaks value for debug output.
func (b Breaks) String() string {
	switch b {
	case Consistent:
		return "Consistent"
	case Inconsistent:
		return "Inconsistent"
	default:
		return "Breaks(?)"
	}
}

// tokenKind tags which alternative a token value holds. A closed, four-way
// tagged struct is used instead of an interface hierarchy, since the set of
// token kinds is fixed by the algorithm and never extended by a driver.
type tokenKind int

const (
	stringTok tokenKind = iota
	breakTok
	beginTok
	endTok
)

// token is the engine's internal tagged representation of the four token
// kinds (String, Break, Begin, End). Drivers never construct a token
// directly; they go through the Scan* methods or the façade helpers.
type token struct {
	kind tokenKind

	text string // stringTok

	offset        int    // breakTok, beginTok
	blankSpace    int    // breakTok
	trailingComma bool   // breakTok
	ifNonempty    bool   // breakTok
	breaks        Breaks // beginTok
}

// bufEntry pairs a token with its size: negative while unresolved (the
// negated right_total at append time), sizeInfinity once forced, or the
// resolved non-negative width once check_stack/check_stream settle it.
type bufEntry struct {
	tok  token
	size int
}

// printFrame is a block currently being emitted: a two-alternative sum type
// (Fits / Broken) represented as data-plus-tag rather than an interface, the
// same way a small closed variant set is modeled elsewhere in this module.
type printFrame struct {
	fits        bool
	breaks      Breaks
	savedIndent int // meaningful only when !fits
}
