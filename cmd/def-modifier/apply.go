package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"def-modifier/internal/modfile"
	"def-modifier/internal/report"
	"def-modifier/modifier"
	"def-modifier/store"
)

const applyLongDescription = `Load a defs document, apply every mod file in order and write the
patched document.

The defs document maps definition ids to trees of mappings, sequences and
scalars. Mod files and the defs document are YAML or JSON, chosen by
extension. The patched document goes to stdout, or to --out.

Numbers load the same way from both formats: a literal without a fraction or
an exponent is an integer and only accepts integral values, anything else is
a float. A float written with no fraction, such as 1.0 saved to JSON as 1,
loads back as an integer.

Without --keep-going the first failing modifier stops the run and nothing is
written. With it, failures are reported per mod file, the document is
written anyway and the exit status is non-zero.`

type applyOptions struct {
	defs      string
	out       string
	format    string
	keepGoing bool
}

func newApplyCmd() *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply --defs FILE MODFILE...",
		Short: "Apply mod files to a defs document",
		Long:  applyLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.defs, "defs", "d", "", "defs document to patch (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the patched document to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format, yaml or json (default: from --out, else yaml)")
	cmd.Flags().BoolVarP(&opts.keepGoing, "keep-going", "k", false, "apply every modifier and report all failures")
	_ = cmd.MarkFlagRequired("defs")

	return cmd
}

func runApply(cmd *cobra.Command, opts *applyOptions, modFiles []string) error {
	format, err := outputFormat(opts)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())

	repo, err := modfile.LoadDefs(opts.defs)
	if err != nil {
		return err
	}

	failed := 0

	for _, path := range modFiles {
		f, err := modfile.LoadFile(path)
		if err != nil {
			return err
		}

		logger.Debug("applying mod file", "modfile", f.Name, "modifiers", len(f.Modifiers))

		if !opts.keepGoing {
			if err := applyStrict(f, repo, logger); err != nil {
				return err
			}

			continue
		}

		diags := f.Apply(repo, modifier.WithLogger(logger))
		failed += len(diags.Errors)

		if err := report.Write(cmd.ErrOrStderr(), f.Name, diags, verboseFlag); err != nil {
			return err
		}
	}

	if err := writeDefs(cmd.OutOrStdout(), opts.out, repo, format); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d modifiers failed", failed)
	}

	return nil
}

func applyStrict(f *modfile.File, repo *store.Memory, logger *slog.Logger) error {
	m := modifier.NewModFile(f.Name, repo, modifier.WithLogger(logger))

	for i, def := range f.Modifiers {
		if err := m.ApplyModifier(def); err != nil {
			return fmt.Errorf("%s: modifier %d (%s): %w", f.Name, i, def.Label(), err)
		}
	}

	return nil
}

func outputFormat(opts *applyOptions) (modfile.Format, error) {
	switch {
	case opts.format != "":
		return modfile.ParseFormat(opts.format)
	case opts.out != "":
		return modfile.FormatOf(opts.out)
	default:
		return modfile.FormatYAML, nil
	}
}

func writeDefs(stdout io.Writer, out string, repo *store.Memory, format modfile.Format) error {
	data, err := modfile.Marshal(repo.Snapshot(), format)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = stdout.Write(data)
		return err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	return nil
}
