package main

import (
	"os"

	"github.com/HACKERPRO961/fen-oyunu/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
