// Package rest exposes the quote service over HTTP.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"
	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/pricing"
	"github.com/hucmaggie/shipping-quote-by-zip-api/store"
)

// Detail selects the response profile for the quote endpoint.
type Detail string

const (
	// DetailTotal returns just the formatted total.
	DetailTotal Detail = "total"
	// DetailNumeric returns the itemized breakdown as raw numbers.
	DetailNumeric Detail = "numeric"
	// DetailFormatted returns currency strings plus quote metadata.
	DetailFormatted Detail = "formatted"
)

// QuoteGetter is the service surface the handler needs.
type QuoteGetter interface {
	GetQuote(ctx context.Context, req models.QuoteRequest) (models.QuoteBreakdown, error)
}

// quoteRequest mirrors the JSON request body. Optional fields are pointers so
// an omitted field can be told apart from an explicit zero.
type quoteRequest struct {
	DestZip              string   `json:"dest_zip"`
	OriginZip            *string  `json:"origin_zip"`
	WeightKg             *float64 `json:"weight_kg"`
	LengthCm             *float64 `json:"length_cm"`
	WidthCm              *float64 `json:"width_cm"`
	HeightCm             *float64 `json:"height_cm"`
	Mode                 *string  `json:"mode"`
	FuelSurchargePct     *float64 `json:"fuel_surcharge_pct"`
	RegionalSurchargePct *float64 `json:"regional_surcharge_pct"`
	EnterpriseRateCard   *bool    `json:"enterprise_rate_card"`
}

type totalResponse struct {
	TotalUSD string `json:"total_usd"`
}

type numericResponse struct {
	DistanceKm         float64 `json:"distance_km"`
	ChargeableWeightKg float64 `json:"chargeable_weight_kg"`
	BaseCost           float64 `json:"base_cost"`
	DistanceMultiplier float64 `json:"distance_multiplier"`
	HandlingFee        float64 `json:"handling_fee"`
	FuelSurcharge      float64 `json:"fuel_surcharge"`
	RegionalSurcharge  float64 `json:"regional_surcharge"`
	EnterpriseDiscount float64 `json:"enterprise_discount"`
	Total              float64 `json:"total"`
}

type formattedResponse struct {
	QuoteID               string  `json:"quote_id"`
	OriginZip             string  `json:"origin_zip"`
	DestZip               string  `json:"dest_zip"`
	DistanceKm            float64 `json:"distance_km"`
	DistanceMultiplier    float64 `json:"distance_multiplier"`
	BaseCostUSD           string  `json:"base_cost_usd"`
	HandlingFeeUSD        string  `json:"handling_fee_usd"`
	FuelSurchargeUSD      string  `json:"fuel_surcharge_usd"`
	RegionalSurchargeUSD  string  `json:"regional_surcharge_usd"`
	EnterpriseDiscountUSD string  `json:"enterprise_discount_usd"`
	TotalUSD              string  `json:"total_usd"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// QuoteHandler returns the POST /quote-by-zip handler.
// defaultOriginZip fills origin_zip when the caller omits it; detail picks
// the response profile for this deployment.
func QuoteHandler(svc QuoteGetter, defaultOriginZip string, detail Detail) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed, use POST")
			return
		}

		var body quoteRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		req, err := buildRequest(body, defaultOriginZip)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		breakdown, err := svc.GetQuote(r.Context(), req)
		if errors.Is(err, store.ErrZipNotFound) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to compute quote")
			return
		}

		writeJSON(w, http.StatusOK, renderBreakdown(breakdown, detail))
	})
}

// HealthHandler returns the liveness endpoint, a constant "ok" with no side
// effects.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// buildRequest applies defaults and validates the raw body, producing the
// fully-populated request the service and pricing engine rely on.
func buildRequest(body quoteRequest, defaultOriginZip string) (models.QuoteRequest, error) {
	if strings.TrimSpace(body.DestZip) == "" {
		return models.QuoteRequest{}, errors.New("dest_zip is required")
	}

	req := models.QuoteRequest{
		OriginZip: defaultOriginZip,
		DestZip:   body.DestZip,
		Package: models.PackageSpec{
			WeightKg: models.DefaultWeightKg,
			LengthCm: models.DefaultLengthCm,
			WidthCm:  models.DefaultWidthCm,
			HeightCm: models.DefaultHeightCm,
		},
		Mode:                 models.ModeGround,
		FuelSurchargePct:     models.DefaultFuelSurchargePct,
		RegionalSurchargePct: models.DefaultRegionalSurchargePct,
	}

	if body.OriginZip != nil && *body.OriginZip != "" {
		req.OriginZip = *body.OriginZip
	}
	if body.WeightKg != nil {
		req.Package.WeightKg = *body.WeightKg
	}
	if body.LengthCm != nil {
		req.Package.LengthCm = *body.LengthCm
	}
	if body.WidthCm != nil {
		req.Package.WidthCm = *body.WidthCm
	}
	if body.HeightCm != nil {
		req.Package.HeightCm = *body.HeightCm
	}
	if body.Mode != nil && *body.Mode != "" {
		req.Mode = *body.Mode
	}
	if body.FuelSurchargePct != nil {
		req.FuelSurchargePct = *body.FuelSurchargePct
	}
	if body.RegionalSurchargePct != nil {
		req.RegionalSurchargePct = *body.RegionalSurchargePct
	}
	if body.EnterpriseRateCard != nil {
		req.EnterpriseRateCard = *body.EnterpriseRateCard
	}

	switch {
	case req.Package.WeightKg <= 0:
		return models.QuoteRequest{}, errors.New("weight_kg must be positive")
	case req.Package.LengthCm <= 0:
		return models.QuoteRequest{}, errors.New("length_cm must be positive")
	case req.Package.WidthCm <= 0:
		return models.QuoteRequest{}, errors.New("width_cm must be positive")
	case req.Package.HeightCm <= 0:
		return models.QuoteRequest{}, errors.New("height_cm must be positive")
	case req.FuelSurchargePct < 0:
		return models.QuoteRequest{}, errors.New("fuel_surcharge_pct must be non-negative")
	case req.RegionalSurchargePct < 0:
		return models.QuoteRequest{}, errors.New("regional_surcharge_pct must be non-negative")
	case !models.ValidMode(req.Mode):
		return models.QuoteRequest{}, fmt.Errorf("mode must be one of %q, %q, %q",
			models.ModeGround, models.ModeAir, models.ModeExpress)
	}

	return req, nil
}

// renderBreakdown shapes the breakdown for the configured response profile.
// Computation stays numeric end to end; currency formatting happens only here.
func renderBreakdown(b models.QuoteBreakdown, detail Detail) any {
	switch detail {
	case DetailTotal:
		return totalResponse{TotalUSD: formatCurrency(b.Total)}
	case DetailNumeric:
		return numericResponse{
			DistanceKm:         pricing.Round2(b.DistanceKm),
			ChargeableWeightKg: pricing.Round2(b.ChargeableWeightKg),
			BaseCost:           b.BaseCost,
			DistanceMultiplier: b.DistanceMultiplier,
			HandlingFee:        b.HandlingFee,
			FuelSurcharge:      b.FuelSurcharge,
			RegionalSurcharge:  b.RegionalSurcharge,
			EnterpriseDiscount: b.EnterpriseDiscount,
			Total:              b.Total,
		}
	default:
		return formattedResponse{
			QuoteID:               b.QuoteID,
			OriginZip:             b.OriginZip,
			DestZip:               b.DestZip,
			DistanceKm:            pricing.Round2(b.DistanceKm),
			DistanceMultiplier:    b.DistanceMultiplier,
			BaseCostUSD:           formatCurrency(b.BaseCost),
			HandlingFeeUSD:        formatCurrency(b.HandlingFee),
			FuelSurchargeUSD:      formatCurrency(b.FuelSurcharge),
			RegionalSurchargeUSD:  formatCurrency(b.RegionalSurcharge),
			EnterpriseDiscountUSD: formatCurrency(b.EnterpriseDiscount),
			TotalUSD:              formatCurrency(b.Total),
		}
	}
}

// formatCurrency renders amount as US currency: $ sign, thousands commas,
// 2 decimals.
func formatCurrency(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}
	return sign + "$" + grouped.String() + "." + fracPart
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
