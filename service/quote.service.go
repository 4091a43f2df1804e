package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"
	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/pricing"
)

// DistanceResolver maps a ZIP pair to a distance in kilometers.
type DistanceResolver interface {
	DistanceKm(ctx context.Context, originZip, destZip string) (float64, error)
}

// Publisher sends quote events to the event bus.
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
}

// quoteGeneratedEvent is the payload published after each successful quote.
type quoteGeneratedEvent struct {
	QuoteID    string  `json:"quote_id"`
	OriginZip  string  `json:"origin_zip"`
	DestZip    string  `json:"dest_zip"`
	DistanceKm float64 `json:"distance_km"`
	Mode       string  `json:"mode"`
	Total      float64 `json:"total"`
}

// QuoteService handles the quote business logic: resolve the distance, run
// the pricing engine, and emit a quote.generated event.
type QuoteService struct {
	resolver DistanceResolver
	producer Publisher // nil when event publishing is disabled
}

func NewQuoteService(resolver DistanceResolver, producer Publisher) *QuoteService {
	return &QuoteService{
		resolver: resolver,
		producer: producer,
	}
}

// GetQuote computes the cost breakdown for a validated request.
// The only error source is ZIP resolution; the pricing engine itself cannot
// fail on validated inputs.
func (s *QuoteService) GetQuote(ctx context.Context, req models.QuoteRequest) (models.QuoteBreakdown, error) {
	distanceKm, err := s.resolver.DistanceKm(ctx, req.OriginZip, req.DestZip)
	if err != nil {
		return models.QuoteBreakdown{}, err
	}

	breakdown := pricing.Compute(distanceKm, req.Package, req.Mode,
		req.FuelSurchargePct, req.RegionalSurchargePct, req.EnterpriseRateCard)
	breakdown.QuoteID = uuid.NewString()
	breakdown.OriginZip = req.OriginZip
	breakdown.DestZip = req.DestZip

	s.publishGenerated(ctx, req.Mode, breakdown)
	return breakdown, nil
}

// publishGenerated emits the quote event best-effort: a bus failure is logged
// but never changes the quote the caller gets back.
func (s *QuoteService) publishGenerated(ctx context.Context, mode string, b models.QuoteBreakdown) {
	if s.producer == nil {
		return
	}
	event := quoteGeneratedEvent{
		QuoteID:    b.QuoteID,
		OriginZip:  b.OriginZip,
		DestZip:    b.DestZip,
		DistanceKm: pricing.Round2(b.DistanceKm),
		Mode:       mode,
		Total:      b.Total,
	}
	if err := s.producer.Publish(ctx, b.QuoteID, event); err != nil {
		log.Printf("failed to publish quote event %s: %v", b.QuoteID, err)
	}
}
