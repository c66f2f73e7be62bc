package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/GHutch55/fortune/backend/api/v1/corpus"
	"github.com/GHutch55/fortune/backend/api/v1/database"
	"github.com/GHutch55/fortune/backend/api/v1/fortune"
	"github.com/GHutch55/fortune/backend/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	fortunes, source, err := loadFortunes(cfg)
	if err != nil {
		log.Fatalf("failed to load fortunes: %v", err)
	}

	var picker fortune.Picker
	if cfg.Seed != nil {
		picker = fortune.NewSeededPicker(*cfg.Seed)
	}

	svc, err := fortune.NewService(corpus.Normalize(fortunes), picker)
	if err != nil {
		log.Fatalf("invalid fortune corpus from %s: %v", source, err)
	}
	log.Printf("Loaded %d fortunes from %s", svc.Size(), source)

	r := newRouter(svc, cfg.AllowedOrigins)

	log.Printf("Starting server on %s", cfg.Addr())
	err = http.ListenAndServe(cfg.Addr(), r)
	if err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// loadFortunes picks the corpus source: database, then file, then built-in.
func loadFortunes(cfg *config.Config) ([]string, string, error) {
	switch {
	case cfg.DatabaseURL != "":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, "database", err
		}
		// The corpus is read once; the pool is not needed afterwards.
		defer pool.Close()

		fortunes, err := database.LoadFortunes(ctx, pool)
		return fortunes, "database", err

	case cfg.FortunesFile != "":
		fortunes, err := corpus.LoadFile(cfg.FortunesFile)
		return fortunes, cfg.FortunesFile, err

	default:
		return fortune.DefaultCorpus(), "built-in corpus", nil
	}
}
