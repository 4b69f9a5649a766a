package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the catalog snapshot",
}

var catalogSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy the SRD catalogs into Redis",
	Long: `Fetch every equipment entry and class from the D&D 5e SRD API and store
them as the catalog snapshot that the server loads when redis.enabled is set.`,
	Args: cobra.NoArgs,
	RunE: runCatalogSync,
}

func init() {
	catalogCmd.AddCommand(catalogSyncCmd)
}

func runCatalogSync(cmd *cobra.Command, _ []string) error {
	if !appConfig.Redis.Enabled {
		return errors.FailedPrecondition("redis.enabled must be set to store a catalog snapshot")
	}

	ctx := context.Background()

	client, err := newSRDClient(appConfig)
	if err != nil {
		return err
	}

	repo, cleanup, err := newCatalogRepository(appConfig)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := syncCatalog(ctx, client, repo)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d base items and %d classes (synced at %s)\n",
		out.BaseItemCount, out.ClassCount, out.SyncedAt.Format("2006-01-02 15:04:05Z07:00"))
	return nil
}
