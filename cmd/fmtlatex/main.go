package main

import (
	"os"

	"github.com/goerz/fmtlatex/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
