package main

import (
	"os"

	"github.com/fsdcoach/fsd-coach/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
