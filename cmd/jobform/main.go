package main

import (
	"os"

	"github.com/goliatone/go-jobform/cmd/jobform/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
