package main

import (
	"synthetic_tis/cmd"
)

// Main controller
func main() {
	cmd.Execute() // initialize cobra commands
}
