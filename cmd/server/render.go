package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type outputMode int

const (
	outputPlain outputMode = iota
	outputTable
	outputJSON
)

// conversionReport is what the convert commands print
type conversionReport struct {
	ConversionID string         `json:"conversion_id"`
	Kind         string         `json:"kind"`
	Item         map[string]any `json:"item"`
	Warnings     []string       `json:"warnings"`
}

func selectOutputMode(w io.Writer, forceJSON bool) outputMode {
	if forceJSON {
		return outputJSON
	}
	if isTerminal(w) {
		return outputTable
	}
	return outputPlain
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func writeReport(w io.Writer, report *conversionReport, mode outputMode) error {
	if report.Warnings == nil {
		report.Warnings = []string{}
	}

	if mode == outputJSON {
		return writeJSON(w, report)
	}

	if err := writeJSON(w, report.Item); err != nil {
		return err
	}
	if len(report.Warnings) == 0 {
		return nil
	}

	if mode == outputTable {
		_, err := fmt.Fprintln(w, renderWarnings(report.Warnings))
		return err
	}
	for _, warning := range report.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func renderWarnings(warnings []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Needs manual review")
	tw.AppendHeader(table.Row{"#", "Warning"})
	for i, warning := range warnings {
		tw.AppendRow(table.Row{i + 1, warning})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, WidthMax: 100},
	})
	return tw.Render()
}
