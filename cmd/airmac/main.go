package main

import "github.com/dogeorg/airmac/cmd/airmac/cmd"

func main() {
	cmd.Execute()
}
