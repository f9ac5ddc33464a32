package main

import (
	"os"

	"careerlens/cmd/careerlens/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
