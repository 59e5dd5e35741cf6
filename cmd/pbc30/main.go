package main

import (
	"os"

	"github.com/Makepad-fr/pbc30/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
