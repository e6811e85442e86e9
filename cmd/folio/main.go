package main

import (
	"os"

	"github.com/foliohq/folio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
