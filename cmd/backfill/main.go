package main

import (
	"os"

	"github.com/horecalabs/productivity-backend-go/cmd/backfill/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
