package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var verboseFlag bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "def-modifier",
		Short: "Patch definition objects with declarative field edits",
		Long: `def-modifier applies mod files to definition documents.

A mod file lists modifiers. Each one selects a definition by id and assigns
a value to a field path:

  - guid: rifle
    field: damage.amount
    value: 40
  - guid: squad
    modletlist:
      - field: units[0].hp
        value: 120
      - field: units[0].name
        value: veteran`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every applied edit and list skipped steps")

	cmd.AddCommand(newApplyCmd(), newParseCmd())

	return cmd
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
