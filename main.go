package main

import (
	"os"

	"github.com/ichimon-app/ichimon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
