//go:build !ppdebug

package pp

const debugEnabled = false
