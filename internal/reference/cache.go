// Package reference caches the campuses, classes, teachers and leaders that
// records refer to, and answers name/id lookups against them.
//
// Each kind is fetched at most once per [Cache]; entries are never
// invalidated. Construct a new cache to pick up changes.
package reference

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/models"
)

//go:generate mockgen -source=cache.go -destination=../mock/reference_mock.go -package=mock

// Loader fetches one reference collection.
type Loader interface {
	FetchReference(ctx context.Context, kind models.ReferenceKind) (models.ReferenceCollection, error)
}

// Snapshot is a point-in-time copy of the loaded collections.
type Snapshot map[models.ReferenceKind]models.ReferenceCollection

// Cache is safe for concurrent use. Concurrent loads of the same kind share
// one fetch.
type Cache struct {
	mu          sync.RWMutex
	collections map[models.ReferenceKind]models.ReferenceCollection

	flights singleflight.Group

	logger *logger.Logger
}

func NewCache(logger *logger.Logger) *Cache {
	return &Cache{
		collections: make(map[models.ReferenceKind]models.ReferenceCollection, len(models.ReferenceKinds)),
		logger:      logger,
	}
}

// LoadAll fetches every kind that is not loaded yet, in parallel. Kinds that
// loaded before an error stay cached.
func (c *Cache) LoadAll(ctx context.Context, loader Loader) (Snapshot, error) {
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range models.ReferenceKinds {
		if c.Loaded(kind) {
			continue
		}
		g.Go(func() error {
			_, err := c.Load(gctx, loader, kind)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c.Snapshot(), nil
}

// Load returns the collection of kind, fetching it on first use.
func (c *Cache) Load(ctx context.Context, loader Loader, kind models.ReferenceKind) (models.ReferenceCollection, error) {
	c.mu.RLock()
	collection, ok := c.collections[kind]
	c.mu.RUnlock()
	if ok {
		return collection, nil
	}

	v, err, _ := c.flights.Do(string(kind), func() (any, error) {
		c.mu.RLock()
		collection, ok := c.collections[kind]
		c.mu.RUnlock()
		if ok {
			return collection, nil
		}

		// joined callers must not inherit the cancellation of the one that started the fetch
		collection, err := loader.FetchReference(context.WithoutCancel(ctx), kind)
		if err != nil {
			return nil, fmt.Errorf("error loading %s references: %w", kind, err)
		}

		c.mu.Lock()
		c.collections[kind] = collection
		c.mu.Unlock()

		c.logger.Debug().Str("kind", string(kind)).Int("count", collection.Len()).Msg("reference collection loaded")
		return collection, nil
	})
	if err != nil {
		c.logger.Err(err).Str("kind", string(kind)).Msg("reference collection not loaded")
		return models.ReferenceCollection{}, err
	}

	return v.(models.ReferenceCollection), nil
}

// Loaded reports whether kind has been fetched.
func (c *Cache) Loaded(kind models.ReferenceKind) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.collections[kind]
	return ok
}

// Snapshot copies the loaded collections.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(Snapshot, len(c.collections))
	for kind, collection := range c.collections {
		snapshot[kind] = collection
	}
	return snapshot
}

// IDByName returns the id of the entity of kind named name. An unloaded
// kind or an unknown name yields ("", false).
func (c *Cache) IDByName(kind models.ReferenceKind, name string) (models.ID, bool) {
	if name == "" {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entity := range c.collections[kind].Items {
		if entity.Name == name {
			return entity.ID, true
		}
	}
	return "", false
}

// NameByID returns the name of the entity of kind with the given id. An
// unloaded kind or an unknown id yields ("", false).
func (c *Cache) NameByID(kind models.ReferenceKind, id models.ID) (string, bool) {
	if id.IsZero() {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entity := range c.collections[kind].Items {
		if entity.ID == id {
			return entity.Name, true
		}
	}
	return "", false
}
