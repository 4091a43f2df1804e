// Package pricing implements the shipping cost engine.
//
// Everything here is a pure function of its inputs: no I/O, no clock, no
// randomness. Validation (positive weight/dimensions, non-negative
// percentages, known mode) is the request boundary's job; the engine assumes
// it already happened.
package pricing

import (
	"math"

	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"
)

// Pricing tunables. Process-wide constants, loaded once, never mutated.
const (
	// DimDivisorCm3PerKg is the common DIM factor: cubic centimeters per
	// billed kilogram of dimensional weight.
	DimDivisorCm3PerKg = 5000.0

	oversizeFeeUSD   = 10.0
	overweightFeeUSD = 15.0

	oversizeSideCm    = 100.0
	oversizeGirthCm   = 300.0
	overweightLimitKg = 30.0

	enterpriseDiscountRate = 0.10
)

// modeRatePerKg maps each shipping mode to its per-kg rate in USD.
var modeRatePerKg = map[string]float64{
	models.ModeGround:  0.80,
	models.ModeAir:     1.60,
	models.ModeExpress: 2.00,
}

// Round2 rounds to 2 fraction digits, half away from zero. A small epsilon is
// added first so values sitting just under a .xx5 boundary due to binary
// float representation still round up, matching the reference rate card.
func Round2(x float64) float64 {
	return math.Round((x+1e-9)*100) / 100
}

// DistanceMultiplier is a linear 5% surcharge per 1,000 km, no cap.
func DistanceMultiplier(distanceKm float64) float64 {
	return 1.0 + 0.05*(distanceKm/1000.0)
}

// HandlingFee returns the flat handling surcharge for a package. Oversize and
// overweight fees stack when both conditions hold.
func HandlingFee(pkg models.PackageSpec) float64 {
	oversize := pkg.LengthCm > oversizeSideCm ||
		pkg.WidthCm > oversizeSideCm ||
		pkg.HeightCm > oversizeSideCm ||
		pkg.LengthCm+2*(pkg.WidthCm+pkg.HeightCm) > oversizeGirthCm
	overweight := pkg.WeightKg > overweightLimitKg

	fee := 0.0
	if oversize {
		fee += oversizeFeeUSD
	}
	if overweight {
		fee += overweightFeeUSD
	}
	return fee
}

// ChargeableWeightKg bills the greater of actual and dimensional weight.
func ChargeableWeightKg(pkg models.PackageSpec) float64 {
	dimWeight := (pkg.LengthCm * pkg.WidthCm * pkg.HeightCm) / DimDivisorCm3PerKg
	return math.Max(pkg.WeightKg, dimWeight)
}

// Compute produces the itemized cost breakdown for a package shipped
// distanceKm under the given mode and surcharge parameters.
//
// Surcharges stack sequentially: fuel applies to the distance-adjusted base
// plus handling, and the regional surcharge applies on top of a base that
// already includes the fuel surcharge. The enterprise discount is 10% of the
// whole surcharged amount.
func Compute(distanceKm float64, pkg models.PackageSpec, mode string, fuelPct, regionalPct float64, enterprise bool) models.QuoteBreakdown {
	chargeable := ChargeableWeightKg(pkg)
	base := chargeable * modeRatePerKg[mode]

	mult := DistanceMultiplier(distanceKm)
	adjustedBase := base * mult

	handling := HandlingFee(pkg)
	fuel := (fuelPct / 100.0) * (adjustedBase + handling)
	regional := (regionalPct / 100.0) * (adjustedBase + handling + fuel)

	discount := 0.0
	if enterprise {
		discount = enterpriseDiscountRate * (adjustedBase + handling + fuel + regional)
	}
	total := adjustedBase + handling + fuel + regional - discount

	return models.QuoteBreakdown{
		DistanceKm:         distanceKm,
		ChargeableWeightKg: chargeable,
		BaseCost:           Round2(base),
		DistanceMultiplier: Round2(mult),
		HandlingFee:        Round2(handling),
		FuelSurcharge:      Round2(fuel),
		RegionalSurcharge:  Round2(regional),
		EnterpriseDiscount: Round2(discount),
		Total:              Round2(total),
	}
}
