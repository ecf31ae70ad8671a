package main

import "github.com/xll-gen/bin2h/cmd"

// main is the entry point of the bin2h CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
