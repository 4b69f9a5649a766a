package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
	"github.com/KirkDiggler/rpg-item-converter/internal/handlers/converter/v1alpha1"
)

var (
	source    string
	page      int
	titleCase bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert an item through the server",
	Long: `Send item text from file, or stdin when no file is given, to the server:

  client convert flame-tongue.txt
  client convert --source HB --page 12 < vorpal.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: convertItem,
}

func init() {
	convertCmd.Flags().StringVar(&source, "source", "", "Source abbreviation")
	convertCmd.Flags().IntVar(&page, "page", 0, "Page number")
	convertCmd.Flags().BoolVar(&titleCase, "title-case", false, "Title-case the item name")
}

func convertItem(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	client, cleanup, err := createConverterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.ConvertItemRequest{
		Text:      string(data),
		Source:    source,
		Page:      page,
		TitleCase: titleCase,
	}

	resp, err := client.ConvertItem(ctx, req.ToStruct())
	if err != nil {
		err = errors.FromGRPCError(err)
		return fmt.Errorf("failed to convert item: %w", err)
	}

	out := v1alpha1.ParseConvertItemResponse(resp)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Conversion %s (%s)\n", out.ConversionID, out.Kind)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out.Item); err != nil {
		return err
	}

	for _, warning := range out.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	return nil
}
