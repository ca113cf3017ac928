package main

import (
	"os"

	"github.com/a137x/timelock/cmd"
)

func main() {
	if cmd.Execute() != nil {
		os.Exit(1)
	}
}
