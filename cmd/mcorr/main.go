package main

import (
	"os"

	"github.com/SscSPs/monetary_correction_app/cmd/mcorr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
