package main

import (
	"fmt"
	"os"

	"storycoach/cmd/storycoach/cmd"
	"storycoach/internal/config"
)

func main() {
	// Load .env before any command runs; a broken .env file is fatal, a
	// missing one is not.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	cmd.Execute()
}
