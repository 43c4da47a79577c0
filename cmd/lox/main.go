package main

import (
	"os"

	"github.com/woozymasta/lox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
