package main

import (
	"os"

	"github.com/questline-dev/questline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
