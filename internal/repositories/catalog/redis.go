package catalog

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
	"github.com/KirkDiggler/rpg-item-converter/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-item-converter/internal/redis"
)

const (
	defaultKeyPrefix = "catalog:"

	baseItemsKey = "base_items"
	classesKey   = "classes"
	syncedAtKey  = "synced_at"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	prefix string
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
	// Clock stamps saved snapshots (optional, defaults to the system clock)
	Clock clock.Clock
	// KeyPrefix namespaces the snapshot keys (optional, defaults to "catalog:")
	KeyPrefix string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		prefix: prefix,
	}, nil
}

type classData struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

func (r *redisRepository) key(name string) string {
	return r.prefix + name
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if len(input.BaseItems) == 0 && len(input.Classes) == 0 {
		return nil, errors.InvalidArgument("snapshot has no entries")
	}

	items := make(map[string]any, len(input.BaseItems))
	for _, b := range input.BaseItems {
		if b == nil {
			continue
		}
		data, err := json.Marshal(b.Fields)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal base item %s", b.GetID())
		}
		items[b.GetID()] = string(data)
	}

	classes := make(map[string]any, len(input.Classes))
	for _, c := range input.Classes {
		if c == nil {
			continue
		}
		data, err := json.Marshal(classData{Name: c.Name, Source: c.Source})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal class %s", c.GetID())
		}
		classes[c.GetID()] = string(data)
	}

	syncedAt := r.clock.Now().UTC().Truncate(time.Second)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key(baseItemsKey), r.key(classesKey))
	if len(items) > 0 {
		pipe.HSet(ctx, r.key(baseItemsKey), items)
	}
	if len(classes) > 0 {
		pipe.HSet(ctx, r.key(classesKey), classes)
	}
	pipe.Set(ctx, r.key(syncedAtKey), syncedAt.Format(time.RFC3339), 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to save catalog snapshot")
	}

	return &SaveOutput{
		BaseItemCount: len(items),
		ClassCount:    len(classes),
		SyncedAt:      syncedAt,
	}, nil
}

func (r *redisRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	syncedAtRaw, err := r.client.Get(ctx, r.key(syncedAtKey)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFound("catalog snapshot not found")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read catalog snapshot time")
	}

	syncedAt, err := time.Parse(time.RFC3339, syncedAtRaw)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to parse catalog snapshot time")
	}

	rawItems, err := r.client.HGetAll(ctx, r.key(baseItemsKey)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read base items")
	}
	rawClasses, err := r.client.HGetAll(ctx, r.key(classesKey)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read classes")
	}

	output := &LoadOutput{
		BaseItems: make([]*item.BaseItem, 0, len(rawItems)),
		Classes:   make([]*item.Class, 0, len(rawClasses)),
		SyncedAt:  syncedAt,
	}

	for _, id := range sortedKeys(rawItems) {
		var fields map[string]any
		if err := json.Unmarshal([]byte(rawItems[id]), &fields); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal base item "+id)
		}
		b := item.NewBaseItem(fields)
		if b == nil {
			return nil, errors.Internalf("base item %s has no name", id)
		}
		output.BaseItems = append(output.BaseItems, b)
	}

	for _, id := range sortedKeys(rawClasses) {
		var data classData
		if err := json.Unmarshal([]byte(rawClasses[id]), &data); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal class "+id)
		}
		output.Classes = append(output.Classes, &item.Class{Name: data.Name, Source: data.Source})
	}

	return output, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
