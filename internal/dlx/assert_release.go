//go:build !dlxdebug

package dlx

// assertf is a no-op outside dlxdebug builds, keeping cover/uncover
// alloc- and branch-free on the hot path.
func assertf(cond bool, format string, args ...any) {}
