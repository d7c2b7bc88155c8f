package main

import (
	"os"

	"github.com/msto63/exfc/cmd/exfc/cmd"
	"github.com/msto63/exfc/internal/reporter"
)

func main() {
	if err := cmd.Execute(); err != nil {
		reporter.New(reporter.WithOutput(os.Stderr)).Handle(err)
	}
}
