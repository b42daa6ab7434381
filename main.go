// Package main is the entry point for the testrunner CLI.
package main

import "gooze.dev/pkg/testrunner/cmd"

func main() {
	cmd.Execute()
}
