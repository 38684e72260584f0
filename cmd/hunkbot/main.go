package main

import (
	"os"

	"github.com/hunkbot/hunkbot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
