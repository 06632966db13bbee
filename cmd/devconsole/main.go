package main

import (
	"os"

	"github.com/msto63/devconsole/cmd/devconsole/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
