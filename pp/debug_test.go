//go:build !ppdebug

package pp

import "testing"

// Without the ppdebug build tag, debugEnabled compiles to false and no
// marker characters are ever injected — this is the default build.
func TestDebugEnabled_offByDefault(t *testing.T) {
	if debugEnabled {
		t.Fatal("debugEnabled must be false without the ppdebug build tag")
	}
}
