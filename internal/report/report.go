// Package report renders apply diagnostics for the command line.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"def-modifier/internal/diagnostic"
)

// Summary returns a one-line count of the diagnostics.
func Summary(d *diagnostic.Diagnostics) string {
	return fmt.Sprintf("%d errors, %d warnings, %d infos", len(d.Errors), len(d.Warnings), len(d.Infos))
}

// Write renders the diagnostics of one mod file as a table. Infos are listed
// only when withInfos is set; they are always counted in the footer.
func Write(w io.Writer, name string, d *diagnostic.Diagnostics, withInfos bool) error {
	rows := append(append([]diagnostic.Diagnostic{}, d.Errors...), d.Warnings...)
	if withInfos {
		rows = append(rows, d.Infos...)
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Severity", "Definition", "Field", "Code", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, diag := range rows {
		table.Append([]string{diag.Severity.String(), diag.Definition, diag.FieldPath, diag.Code, diag.Message})
	}

	table.SetFooter([]string{name, "", "", "", Summary(d)})
	table.Render()

	_, err := fmt.Fprintf(w, "\n%s", tableBuffer.String())

	return err
}
