package main

import (
	"fmt"
)

// Set at build time with -ldflags.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) error {
	_, _ = fmt.Fprintf(ui.Out, "lectio %s (%s)\n", BuildTag, BuildCommit)
	return nil
}
