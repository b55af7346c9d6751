package main

import (
	"os"

	"github.com/zenspace/zenspace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
