package main

// @title           Companion
// @version         0.1.0
// @description     Companion service API: update status, update trigger and settings.

import (
	"os"

	"github.com/highcard-dev/companion/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(23)
	}
}
