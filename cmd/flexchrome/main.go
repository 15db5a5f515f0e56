package main

import (
	"os"

	"github.com/agiangrant/flexchrome/cmd/flexchrome/commands"
)

const version = "0.1.0"

func main() {
	if err := commands.NewRoot(version).Execute(); err != nil {
		os.Exit(1)
	}
}
