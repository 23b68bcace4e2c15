package pp

import "github.com/mattn/go-runewidth"

// WidthFunc measures how many margin columns a string occupies. It's
// pluggable rather than a fixed len() or utf8.RuneCountInString, defaulting
// to runewidth.StringWidth so double-width runes (CJK, emoji) count as two
// columns the way a real terminal renders them.
type WidthFunc func(string) int

// defaultWidthFunc is runewidth.StringWidth, shared by every Printer unless
// overridden with SetWidthFunc.
var defaultWidthFunc WidthFunc = runewidth.StringWidth
