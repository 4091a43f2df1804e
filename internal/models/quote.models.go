package models

// Shipping modes accepted by the quote endpoint.
// Each mode maps to a per-kg rate inside the pricing engine.
const (
	ModeGround  = "ground"
	ModeAir     = "air"
	ModeExpress = "express"
)

// Request defaults. Only the destination ZIP is required; everything else
// falls back to these when the caller omits it.
const (
	DefaultOriginZip            = "90001" // Northstar LA distribution center
	DefaultWeightKg             = 1.0
	DefaultLengthCm             = 30.0
	DefaultWidthCm              = 20.0
	DefaultHeightCm             = 10.0
	DefaultFuelSurchargePct     = 12.0
	DefaultRegionalSurchargePct = 3.0
)

// ValidMode reports whether m is one of the supported shipping modes.
func ValidMode(m string) bool {
	switch m {
	case ModeGround, ModeAir, ModeExpress:
		return true
	}
	return false
}

// Coordinate is a (latitude, longitude) pair in decimal degrees.
// Looked up by ZIP code, never mutated after load.
type Coordinate struct {
	Lat float64
	Lon float64
}

// PackageSpec holds the physical attributes of a shipment.
// All fields must be positive; validation happens at the request boundary.
type PackageSpec struct {
	WeightKg float64
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// QuoteRequest is the fully-defaulted, validated input to the quote service.
type QuoteRequest struct {
	OriginZip            string
	DestZip              string
	Package              PackageSpec
	Mode                 string
	FuelSurchargePct     float64
	RegionalSurchargePct float64
	EnterpriseRateCard   bool
}

// QuoteBreakdown is the itemized result of a quote computation.
// Monetary fields are rounded to 2 fraction digits by the pricing engine;
// DistanceKm and ChargeableWeightKg are kept raw and rounded only for display.
type QuoteBreakdown struct {
	QuoteID   string
	OriginZip string
	DestZip   string

	DistanceKm         float64
	ChargeableWeightKg float64
	BaseCost           float64
	DistanceMultiplier float64
	HandlingFee        float64
	FuelSurcharge      float64
	RegionalSurcharge  float64
	EnterpriseDiscount float64
	Total              float64
}
