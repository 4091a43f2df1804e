package geo

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"
	"github.com/hucmaggie/shipping-quote-by-zip-api/store"
)

func TestHaversineKm(t *testing.T) {
	// One degree of longitude at the equator is ~111.195 km.
	d := HaversineKm(models.Coordinate{Lat: 0, Lon: 0}, models.Coordinate{Lat: 0, Lon: 1})
	if math.Abs(d-111.195) > 0.01 {
		t.Fatalf("unexpected distance: %v", d)
	}

	// Identical coordinates are exactly zero.
	p := models.Coordinate{Lat: 10.5, Lon: 20.7}
	if z := HaversineKm(p, p); z != 0 {
		t.Fatalf("expected 0, got %v", z)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	la := models.Coordinate{Lat: 33.973951, Lon: -118.248405}
	atlanta := models.Coordinate{Lat: 33.752880, Lon: -84.392708}
	chicago := models.Coordinate{Lat: 41.886258, Lon: -87.618844}

	pairs := [][2]models.Coordinate{{la, atlanta}, {la, chicago}, {atlanta, chicago}}
	for _, p := range pairs {
		if HaversineKm(p[0], p[1]) != HaversineKm(p[1], p[0]) {
			t.Fatalf("distance not symmetric for %v <-> %v", p[0], p[1])
		}
	}

	// Regression anchor: LA distribution center to Atlanta.
	if d := HaversineKm(la, atlanta); math.Abs(d-3111.639) > 0.001 {
		t.Fatalf("LA->Atlanta distance = %v, want ~3111.639", d)
	}
}

func TestResolverStrictRejectsUnknownZip(t *testing.T) {
	r := NewResolver(store.NewMemoryStore(), LookupStrict)

	_, err := r.Resolve(context.Background(), "99999")
	if !errors.Is(err, store.ErrZipNotFound) {
		t.Fatalf("expected ErrZipNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "99999") {
		t.Fatalf("error should name the offending zip: %v", err)
	}
}

func TestResolverStrictDistanceNamesFailingZip(t *testing.T) {
	r := NewResolver(store.NewMemoryStore(), LookupStrict)

	// Unknown origin surfaces the origin ZIP.
	_, err := r.DistanceKm(context.Background(), "00000", "30301")
	if err == nil || !strings.Contains(err.Error(), "00000") {
		t.Fatalf("expected error naming origin zip, got %v", err)
	}

	// Unknown destination surfaces the destination ZIP.
	_, err = r.DistanceKm(context.Background(), "90001", "99999")
	if err == nil || !strings.Contains(err.Error(), "99999") {
		t.Fatalf("expected error naming dest zip, got %v", err)
	}
}

func TestResolverFallbackApproximatesUnknownZip(t *testing.T) {
	r := NewResolver(store.NewMemoryStore(), LookupFallback)

	// "99999" falls back to the 9xxxx region (Los Angeles), a short hop from
	// the 90001 origin.
	d, err := r.DistanceKm(context.Background(), "90001", "99999")
	if err != nil {
		t.Fatalf("fallback resolve failed: %v", err)
	}
	if d <= 0 || d > 50 {
		t.Fatalf("unexpected fallback distance: %v", d)
	}

	// A digit with no region of its own uses the national default.
	coord, err := r.Resolve(context.Background(), "20001")
	if err != nil {
		t.Fatalf("fallback resolve failed: %v", err)
	}
	if coord != defaultFallback {
		t.Fatalf("expected national default for 2xxxx, got %v", coord)
	}
}

func TestResolverKnownZipIgnoresMode(t *testing.T) {
	// Exact matches behave the same in both modes.
	for _, mode := range []LookupMode{LookupStrict, LookupFallback} {
		r := NewResolver(store.NewMemoryStore(), mode)
		d, err := r.DistanceKm(context.Background(), "90001", "90001")
		if err != nil {
			t.Fatalf("mode %s: %v", mode, err)
		}
		if d != 0 {
			t.Fatalf("mode %s: distance to self = %v, want 0", mode, d)
		}
	}
}
