package main

import (
	"os"

	"github.com/Sk3pz/boulder/cmd/boulder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
