package main

import (
	"os"

	"github.com/Makepad-fr/cards/internal/cli"
	"github.com/Makepad-fr/cards/internal/ui"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(cli.ExitCode(err))
	}
}
