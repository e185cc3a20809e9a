package main

import (
	"os"

	"bloomarc/cmd/bloomarc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
