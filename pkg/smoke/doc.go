// Package smoke runs the callapi binary against a success endpoint and an
// error endpoint, one after the other, so both report paths can be checked
// by eye.
//
// The default launcher spawns the callapi binary that sits next to the
// running executable, sharing its stdout and stderr. InProcessLauncher skips
// the binary and calls package invoke directly.
package smoke
