package main

import (
	"os"

	"github.com/mklane/sqleval/cmd"
)

func main() {
	if cmd.Execute() != nil {
		os.Exit(1)
	}
}
