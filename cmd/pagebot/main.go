package main

import (
	"os"

	"github.com/nortedigital/pagebot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
