package main

import "github.com/vic/lamcalc/cmd/lamcalc/commands"

func main() {
	commands.Execute()
}
