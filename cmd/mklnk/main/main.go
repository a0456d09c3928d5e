package main

import (
	"fmt"
	"os"

	mklnk "github.com/arthur-debert/mklnk/cmd/mklnk"
	"github.com/arthur-debert/mklnk/pkg/errors"
	"github.com/arthur-debert/mklnk/pkg/ui"
)

func main() {
	rootCmd := mklnk.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format := ui.FormatAuto.Resolve(os.Stderr)
		fmt.Fprintln(os.Stderr, ui.RenderError(format, err))
		os.Exit(errors.ExitCode(err))
	}
}
