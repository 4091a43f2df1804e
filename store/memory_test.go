package store

import (
	"context"
	"errors"
	"testing"

	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"
)

func TestMemoryStoreKnownZip(t *testing.T) {
	s := NewMemoryStore()
	coord, err := s.GetCoordinate(context.Background(), "30301")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	want := models.Coordinate{Lat: 33.752880, Lon: -84.392708}
	if coord != want {
		t.Fatalf("coordinate = %v, want %v", coord, want)
	}
}

func TestMemoryStoreUnknownZip(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetCoordinate(context.Background(), "99999")
	if !errors.Is(err, ErrZipNotFound) {
		t.Fatalf("expected ErrZipNotFound, got %v", err)
	}
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.GetCoordinate(ctx, "30301"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMemoryStoreWithData(t *testing.T) {
	s := NewMemoryStoreWithData(map[string]models.Coordinate{
		"12345": {Lat: 1, Lon: 2},
	})
	coord, err := s.GetCoordinate(context.Background(), "12345")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if coord != (models.Coordinate{Lat: 1, Lon: 2}) {
		t.Fatalf("coordinate = %v", coord)
	}
	if _, err := s.GetCoordinate(context.Background(), "30301"); !errors.Is(err, ErrZipNotFound) {
		t.Fatalf("seed table should not leak into custom store, got %v", err)
	}
}
