package main

import "github.com/aswenson/schemer/cmd"

func main() {
	cmd.Execute()
}
