package main

import (
	"os"

	"github.com/smehra/traitlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
