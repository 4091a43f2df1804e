package store

import (
	"context"
	"errors"

	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"
)

// ErrZipNotFound signals that a ZIP code has no entry in the coordinate table.
// Callers decide whether that is fatal (strict lookup) or recoverable (fallback).
var ErrZipNotFound = errors.New("zip code not found")

// ZipStore defines the interface for the ZIP coordinate lookup layer.
// Implementations must return ErrZipNotFound (possibly wrapped) for unknown ZIPs.
type ZipStore interface {
	// GetCoordinate returns the coordinate recorded for zip.
	// ctx allows cancellation and timeouts for database-backed stores.
	GetCoordinate(ctx context.Context, zip string) (models.Coordinate, error)
}
