package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"def-modifier/fieldpath"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse PATH...",
		Short: "Check field paths and print their segments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0

			for _, text := range args {
				path, err := fieldpath.Parse(text)
				if err != nil {
					failed++

					cmd.PrintErrln(err)

					continue
				}

				cmd.Println(path.String())

				for _, seg := range path.Segments {
					if seg.IsIndex() {
						cmd.Printf("  %s %d\n", seg.Kind, seg.Index)
					} else {
						cmd.Printf("  %s %s\n", seg.Kind, seg.Name)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d paths are malformed", failed, len(args))
			}

			return nil
		},
	}

	return cmd
}
