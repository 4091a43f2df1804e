// Package geo resolves ZIP code pairs to great-circle distances.
package geo

import (
	"context"
	"errors"
	"math"

	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"
	"github.com/hucmaggie/shipping-quote-by-zip-api/store"
)

// Mean Earth radius in kilometers (IUGG).
const earthRadiusKm = 6371.0088

// LookupMode controls how the resolver treats ZIPs missing from the store.
type LookupMode string

const (
	// LookupStrict rejects unknown ZIPs with store.ErrZipNotFound.
	LookupStrict LookupMode = "strict"
	// LookupFallback approximates unknown ZIPs with a regional coordinate
	// chosen by the first ZIP digit.
	LookupFallback LookupMode = "fallback"
)

// HaversineKm returns the great-circle distance between a and b in kilometers.
// Identical coordinates yield exactly 0.
func HaversineKm(a, b models.Coordinate) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lon - a.Lon)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Resolver maps ZIP code pairs to distances using a ZipStore for exact
// matches, optionally falling back to regional approximations.
type Resolver struct {
	zips store.ZipStore
	mode LookupMode
}

func NewResolver(zips store.ZipStore, mode LookupMode) *Resolver {
	return &Resolver{zips: zips, mode: mode}
}

// Resolve returns the coordinate for zip. In strict mode an unknown ZIP
// surfaces as store.ErrZipNotFound (wrapped with the offending ZIP); in
// fallback mode it resolves to the regional approximation instead.
func (r *Resolver) Resolve(ctx context.Context, zip string) (models.Coordinate, error) {
	coord, err := r.zips.GetCoordinate(ctx, zip)
	if err == nil {
		return coord, nil
	}
	if r.mode == LookupFallback && errors.Is(err, store.ErrZipNotFound) {
		return regionFallback(zip), nil
	}
	return models.Coordinate{}, err
}

// DistanceKm resolves both ZIPs and returns the distance between them.
func (r *Resolver) DistanceKm(ctx context.Context, originZip, destZip string) (float64, error) {
	origin, err := r.Resolve(ctx, originZip)
	if err != nil {
		return 0, err
	}
	dest, err := r.Resolve(ctx, destZip)
	if err != nil {
		return 0, err
	}
	return HaversineKm(origin, dest), nil
}
