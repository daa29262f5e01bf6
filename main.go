package main

import "github.com/chip8deck/chip8deck/cmd"

func main() {
	cmd.Execute()
}
