package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"
)

// MemoryStore serves ZIP coordinates from an in-process map.
// It is the default store when no database is configured, seeded with the
// built-in US ZIP table.
type MemoryStore struct {
	zips map[string]models.Coordinate
	mu   sync.RWMutex
}

// NewMemoryStore returns a MemoryStore seeded with the built-in ZIP table.
func NewMemoryStore() *MemoryStore {
	zips := make(map[string]models.Coordinate, len(usZipSeed))
	for zip, coord := range usZipSeed {
		zips[zip] = coord
	}
	return &MemoryStore{zips: zips}
}

// NewMemoryStoreWithData returns a MemoryStore backed by the given table.
// Used by tests that want full control over the known ZIP set.
func NewMemoryStoreWithData(zips map[string]models.Coordinate) *MemoryStore {
	copied := make(map[string]models.Coordinate, len(zips))
	for zip, coord := range zips {
		copied[zip] = coord
	}
	return &MemoryStore{zips: copied}
}

func (s *MemoryStore) GetCoordinate(ctx context.Context, zip string) (models.Coordinate, error) {
	// Check if the context is canceled or timed out
	select {
	case <-ctx.Done():
		return models.Coordinate{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	coord, ok := s.zips[zip]
	if !ok {
		return models.Coordinate{}, fmt.Errorf("zip %q: %w", zip, ErrZipNotFound)
	}
	return coord, nil
}
