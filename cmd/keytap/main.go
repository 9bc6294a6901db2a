package main

import (
	"os"

	"keytap/cmd/keytap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
