package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-item-converter/internal/orchestrators/converter"
)

var (
	convertSource    string
	convertPage      int
	convertTitleCase bool
	convertJSON      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert one pasted item",
	Long: `Convert the item text in file, or on stdin when no file is given.
The first line is the item name, the second the tagline, the rest the body.

  item-converter convert --items-file items-base.json --classes-file class.json flame-tongue.txt
  pbpaste | item-converter convert --srd --source HB`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertSource, "source", "", "Source abbreviation (defaults to converter.default_source)")
	convertCmd.Flags().IntVar(&convertPage, "page", 0, "Page number")
	convertCmd.Flags().BoolVar(&convertTitleCase, "title-case", false, "Title-case the item name")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Print the result and warnings as one JSON document")
}

func runConvert(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	ctx := context.Background()

	index, err := loadCatalog(ctx, appConfig)
	if err != nil {
		return err
	}

	svc, err := newConverter(appConfig, index)
	if err != nil {
		return fmt.Errorf("failed to create converter: %w", err)
	}

	out, err := svc.ConvertItem(ctx, &converter.ConvertItemInput{
		Text:      text,
		Source:    convertSource,
		Page:      convertPage,
		TitleCase: convertTitleCase,
	})
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	return writeReport(stdout, &conversionReport{
		ConversionID: out.ConversionID,
		Kind:         string(out.Result.Kind()),
		Item:         out.Result.Fields(),
		Warnings:     out.Warnings,
	}, selectOutputMode(stdout, convertJSON))
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
