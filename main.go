package main

import (
	"os"

	"github.com/searchcmp/searchcmp-cli/cmd"
	"github.com/searchcmp/searchcmp-cli/internal/logging"
)

func main() {
	defer logging.Close()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
