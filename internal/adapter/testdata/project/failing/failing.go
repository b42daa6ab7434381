// Package failing holds one test of every outcome.
package failing

// Truth returns true.
func Truth() bool {
	return true
}
