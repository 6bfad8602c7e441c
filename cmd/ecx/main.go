package main

import (
	"os"

	"github.com/larkov/ecx/cmd/ecx/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
