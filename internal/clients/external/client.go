// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-item-converter/internal/clients/external Client

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

// SourceSRD is the source recorded on everything loaded from the SRD API
const SourceSRD = "SRD"

// Client loads catalog data from the D&D 5e SRD API
type Client interface {
	// ListBaseItems returns every SRD equipment entry as a base item
	ListBaseItems(ctx context.Context) ([]*item.BaseItem, error)

	// ListClasses returns the SRD classes
	ListClasses(ctx context.Context) ([]*item.Class, error)
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("CacheTTL", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create D&D 5e API client")
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) ListBaseItems(ctx context.Context) ([]*item.BaseItem, error) {
	refs, err := c.dnd5eClient.ListEquipment()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list equipment from D&D 5e API")
	}

	slog.Info("Loading SRD equipment details concurrently", "count", len(refs))

	baseItems := make([]*item.BaseItem, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			if ctx.Err() != nil {
				errChan <- ctx.Err()
				return
			}

			equipment, err := c.dnd5eClient.GetEquipment(key)
			if err != nil {
				slog.Error("Failed to get equipment details", "equipment", key, "error", err)
				errChan <- errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get equipment "+key)
				return
			}

			baseItems[idx] = convertEquipment(equipment)
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	out := baseItems[:0]
	for _, b := range baseItems {
		if b != nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func (c *client) ListClasses(_ context.Context) ([]*item.Class, error) {
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list classes from D&D 5e API")
	}

	classes := make([]*item.Class, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Name == "" {
			continue
		}
		classes = append(classes, &item.Class{
			Name:   ref.Name,
			Source: SourceSRD,
		})
	}
	return classes, nil
}
