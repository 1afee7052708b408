//go:build dlxdebug

package dlx

import "fmt"

// Link-invariant violations inside the matrix indicate a bug in this
// package, not a user-facing condition, so debug builds abort with
// diagnostics rather than silently returning a wrong answer.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("dlx: invariant violation: " + fmt.Sprintf(format, args...))
	}
}
