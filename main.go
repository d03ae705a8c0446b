package main

import (
	"os"

	"github.com/Tekmindlabs/Aivy-Dojo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
