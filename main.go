package main

import "github.com/finch-gen/finch/cmd"

// main is the entry point of the finch CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
