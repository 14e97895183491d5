package main

import (
	"os"

	"github.com/tracklab/tracklab/cmd/tracklab/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
