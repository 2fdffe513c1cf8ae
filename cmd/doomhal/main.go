package main

import "github.com/famish99/doomhal/internal/cli"

func main() {
	cli.Execute()
}
