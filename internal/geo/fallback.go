package geo

import "github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"

// regionFallbacks approximates a ZIP by its first digit, which identifies the
// USPS national region. Each digit maps to a representative city coordinate.
// Digit 2 covers the DC area, which has no entry of its own in the rate card
// and therefore routes to the national default like unrecognized digits do.
var regionFallbacks = map[byte]models.Coordinate{
	'0': {Lat: 40.7178, Lon: -74.0431},  // Newark, NJ
	'1': {Lat: 40.7128, Lon: -74.0060},  // New York, NY
	'3': {Lat: 27.7663, Lon: -82.6404},  // Tampa, FL
	'4': {Lat: 33.7490, Lon: -84.3880},  // Atlanta, GA
	'5': {Lat: 34.0522, Lon: -118.2437}, // Los Angeles, CA
	'6': {Lat: 41.8781, Lon: -87.6298},  // Chicago, IL
	'7': {Lat: 31.9686, Lon: -99.9018},  // Central Texas
	'8': {Lat: 39.7392, Lon: -104.9903}, // Denver, CO
	'9': {Lat: 34.0522, Lon: -118.2437}, // Los Angeles, CA
}

// defaultFallback is the national default (Los Angeles).
var defaultFallback = models.Coordinate{Lat: 34.0522, Lon: -118.2437}

// regionFallback returns the approximate coordinate for an unrecognized ZIP.
func regionFallback(zip string) models.Coordinate {
	first := byte('0')
	if zip != "" {
		first = zip[0]
	}
	if coord, ok := regionFallbacks[first]; ok {
		return coord
	}
	return defaultFallback
}
