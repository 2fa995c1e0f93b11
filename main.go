// Package main is the entry point for the raygun CLI.
package main

import "gooze.dev/pkg/raygun/cmd"

func main() {
	cmd.Execute()
}
