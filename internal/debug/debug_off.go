//go:build !debug

// Package debug prints tree mutation traces when the module is compiled
// with the `debug` build tag. Call sites guard on Enabled so that the
// arguments are never evaluated in normal builds.
package debug

const Enabled = false

// Printf is no op unless you compile with the `debug` tag
func Printf(f string, args ...interface{}) {}

// Dump is no op unless you compile with the `debug` tag
func Dump(v ...interface{}) {}
