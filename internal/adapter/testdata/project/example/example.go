// Package example has only passing tests.
package example

// Greeting returns a greeting for name.
func Greeting(name string) string {
	return "hello " + name
}
