package main

import "github.com/eng618/maze-router/cmd"

func main() {
	cmd.Execute()
}
