package main

import (
	"os"

	"github.com/murtho/utility/cmd/strutil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
