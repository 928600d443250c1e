package main

import (
	"os"

	"github.com/totegamma/tourofheroes/cmd/heroctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
