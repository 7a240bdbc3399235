package main

import (
	"os"

	"bitseq/cmd/bitseq/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
