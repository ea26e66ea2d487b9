package main

import (
	"os"

	"github.com/abhisek/interference/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
