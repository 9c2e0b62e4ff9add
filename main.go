package main

import (
	"os"

	"github.com/eduplay/eduplay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
