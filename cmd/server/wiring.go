package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-item-converter/internal/clients/external"
	"github.com/KirkDiggler/rpg-item-converter/internal/config"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
	"github.com/KirkDiggler/rpg-item-converter/internal/orchestrators/converter"
	"github.com/KirkDiggler/rpg-item-converter/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-item-converter/internal/redis"
	catalogrepo "github.com/KirkDiggler/rpg-item-converter/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-item-converter/internal/services/catalog"
)

const conversionIDPrefix = "conv"

// loadCatalog builds the catalog index from the one configured source:
// JSON files, the SRD API, or the Redis snapshot.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Index, error) {
	var (
		catalogCfg *catalog.Config
		err        error
		source     string
	)

	switch {
	case cfg.UsesFiles():
		source = "files"
		catalogCfg, err = catalog.LoadFiles(cfg.Catalog.ItemsFile, cfg.Catalog.ClassesFile)
	case cfg.Catalog.UseSRDAPI:
		source = "srd"
		catalogCfg, err = loadFromSRD(ctx, cfg)
	case cfg.Redis.Enabled:
		source = "redis"
		catalogCfg, err = loadFromSnapshot(ctx, cfg)
	default:
		return nil, errors.FailedPrecondition("no catalog source configured: set catalog.items_file, catalog.use_srd_api or redis.enabled")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog from %s", source)
	}

	index, err := catalog.New(catalogCfg)
	if err != nil {
		return nil, err
	}

	slog.Info("Catalog loaded",
		"source", source,
		"base_items", len(index.BaseItems()),
		"classes", len(index.Classes()))

	return index, nil
}

func newSRDClient(cfg *config.Config) (external.Client, error) {
	return external.New(&external.Config{
		BaseURL:  cfg.Catalog.SRDBaseURL,
		CacheTTL: cfg.CacheTTL(),
	})
}

func loadFromSRD(ctx context.Context, cfg *config.Config) (*catalog.Config, error) {
	client, err := newSRDClient(cfg)
	if err != nil {
		return nil, err
	}

	baseItems, err := client.ListBaseItems(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := client.ListClasses(ctx)
	if err != nil {
		return nil, err
	}

	return &catalog.Config{BaseItems: baseItems, Classes: classes}, nil
}

func newCatalogRepository(cfg *config.Config) (catalogrepo.Repository, func(), error) {
	client, err := redis.New(&redis.Config{Addresses: cfg.Redis.Addresses})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	repo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{
		Client:    client,
		KeyPrefix: cfg.Redis.KeyPrefix,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repo, cleanup, nil
}

func loadFromSnapshot(ctx context.Context, cfg *config.Config) (*catalog.Config, error) {
	repo, cleanup, err := newCatalogRepository(cfg)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	snapshot, err := repo.Load(ctx, catalogrepo.LoadInput{})
	if err != nil {
		return nil, err
	}

	slog.Info("Using catalog snapshot", "synced_at", snapshot.SyncedAt)
	return &catalog.Config{BaseItems: snapshot.BaseItems, Classes: snapshot.Classes}, nil
}

// syncCatalog copies the SRD catalogs into the snapshot store
func syncCatalog(ctx context.Context, client external.Client, repo catalogrepo.Repository) (*catalogrepo.SaveOutput, error) {
	baseItems, err := client.ListBaseItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list base items")
	}
	classes, err := client.ListClasses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list classes")
	}

	return repo.Save(ctx, catalogrepo.SaveInput{
		BaseItems: baseItems,
		Classes:   classes,
	})
}

func newConverter(cfg *config.Config, index catalog.Catalog) (converter.Service, error) {
	return converter.NewOrchestrator(&converter.Config{
		Catalog:       index,
		IDGenerator:   idgen.NewUUID(conversionIDPrefix),
		DefaultSource: cfg.Converter.DefaultSource,
		CoreSource:    cfg.Catalog.CoreSource,
		TitleCase:     cfg.Converter.TitleCase,
	})
}
