package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/csg33k/semogye/internal/adapters/pdf"
	sqliteadapter "github.com/csg33k/semogye/internal/adapters/sqlite"
	"github.com/csg33k/semogye/internal/config"
	"github.com/csg33k/semogye/internal/handlers"
	"github.com/csg33k/semogye/internal/logging"
	"github.com/csg33k/semogye/internal/withholding"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	table, err := loadTable(cfg)
	if err != nil {
		log.Fatalf("failed to load withholding table: %v", err)
	}

	repo, err := sqliteadapter.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()

	h := handlers.New(repo, pdf.New(cfg.PDFFont), table, cfg.SiteURL, logger)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           logging.AccessLog(logger, 500*time.Millisecond)(h.Routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("semogye running", "url", "http://localhost"+cfg.Addr(), "db", cfg.DBPath, "tax_year", table.Year)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

// loadTable prefers an operator-supplied table file over the embedded one.
func loadTable(cfg config.Config) (*withholding.Table, error) {
	if cfg.WithholdingTable != "" {
		return withholding.LoadFile(cfg.WithholdingTable)
	}
	t, ok := withholding.ForYear(cfg.TaxYear)
	if !ok {
		slog.Warn("no withholding table for year, using default", "year", cfg.TaxYear, "default", withholding.DefaultYear)
	}
	return t, nil
}
