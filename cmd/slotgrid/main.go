package main

import (
	"os"

	"github.com/confsched/slotgrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
