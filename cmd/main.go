package main

import (
	"log"
	"net/http"
	"time"

	"github.com/hucmaggie/shipping-quote-by-zip-api/config"
	"github.com/hucmaggie/shipping-quote-by-zip-api/handler/rest"
	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/geo"
	"github.com/hucmaggie/shipping-quote-by-zip-api/internal/kafka"
	"github.com/hucmaggie/shipping-quote-by-zip-api/service"
	"github.com/hucmaggie/shipping-quote-by-zip-api/store"
)

// main wires the quote service: config -> ZIP store -> distance resolver ->
// event producer -> service -> HTTP server.
func main() {
	cfg := config.LoadConfig()

	// ZIP coordinate store: Postgres when configured, otherwise the built-in
	// in-memory table.
	var zips store.ZipStore
	if cfg.UsePostgres() {
		pg, err := store.NewPostgresStore(cfg.GetDBURL())
		if err != nil {
			log.Fatalf("failed to create store: %v", err)
		}
		defer pg.Close()
		zips = pg
		log.Println("using postgres zip store")
	} else {
		zips = store.NewMemoryStore()
		log.Println("using in-memory zip store")
	}

	mode := geo.LookupStrict
	if cfg.ZIP_LOOKUP_MODE == string(geo.LookupFallback) {
		mode = geo.LookupFallback
	}
	resolver := geo.NewResolver(zips, mode)

	// Event publishing is optional; with no broker configured quotes are
	// still served, just not announced.
	var producer service.Publisher
	if cfg.KAFKA_BROKER != "" {
		kp := kafka.NewProducer(cfg.KAFKA_BROKER, cfg.KAFKA_TOPIC)
		defer kp.Close()
		producer = kp
		log.Printf("publishing quote events to %s on %s", cfg.KAFKA_TOPIC, cfg.KAFKA_BROKER)
	}

	svc := service.NewQuoteService(resolver, producer)

	mux := http.NewServeMux()
	mux.Handle("/quote-by-zip", rest.QuoteHandler(svc, cfg.ORIGIN_ZIP, rest.Detail(cfg.RESPONSE_DETAIL)))
	mux.Handle("/health", rest.HealthHandler())

	srv := &http.Server{
		Addr:              ":" + cfg.PORT,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("quote service listening on :%s (lookup=%s detail=%s)", cfg.PORT, cfg.ZIP_LOOKUP_MODE, cfg.RESPONSE_DETAIL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
