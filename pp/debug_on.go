//go:build ppdebug

package pp

// debugEnabled gates the «»‹›· structural markers that show block and break
// boundaries in the output. Building with -tags ppdebug turns them on; an
// ordinary build compiles them away entirely.
const debugEnabled = true
