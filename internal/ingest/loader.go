// Package ingest loads tourist spot exports into the knowledge store.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/repositories"
)

// Record is one entry of the JSON export. Keys follow the export file.
type Record struct {
	Name           string   `json:"Name" validate:"required"`
	Type           *string  `json:"Type"`
	Address        *string  `json:"Address"`
	Grade          *string  `json:"Grade"`
	District       *string  `json:"District"`
	City           *string  `json:"City"`
	Province       *string  `json:"Province"`
	AGADivision    *string  `json:"AGA Division"`
	LocalAuthority *string  `json:"PS/MC/UC"`
	SourceFile     *string  `json:"SourceFile"`
	ImageURLs      []string `json:"image_urls"`
}

type Report struct {
	Total   int
	Loaded  int
	Skipped int
	Batches int
}

type Loader struct {
	repo      repositories.SpotRepository
	validate  *validator.Validate
	workers   int
	batchSize int
	logger    *zap.Logger
}

func NewLoader(repo repositories.SpotRepository, workers, batchSize int, logger *zap.Logger) *Loader {
	if workers < 1 {
		workers = 1
	}
	if batchSize < 1 {
		batchSize = 100
	}
	return &Loader{
		repo:      repo,
		validate:  validator.New(),
		workers:   workers,
		batchSize: batchSize,
		logger:    logger.Named("ingest"),
	}
}

// Slug derives the record key from a spot name.
func Slug(name string) string {
	return strings.TrimSpace(strings.NewReplacer("/", "_", ".", "_").Replace(name))
}

func (l *Loader) LoadFile(ctx context.Context, path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return l.Load(ctx, f)
}

// Load decodes a JSON array of records and upserts the valid ones. Records
// sharing a slug collapse to the last one in the file.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Report, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return Report{}, fmt.Errorf("decode records: %w", err)
	}

	report := Report{Total: len(records)}
	spots := make([]db_models.TouristSpot, 0, len(records))
	index := make(map[string]int, len(records))

	for i, rec := range records {
		rec.Name = strings.TrimSpace(rec.Name)
		if err := l.validate.Struct(rec); err != nil {
			report.Skipped++
			l.logger.Warn("skipping record", zap.Int("index", i), zap.String("name", rec.Name), zap.Error(err))
			continue
		}
		rec.ImageURLs = l.validURLs(i, rec.ImageURLs)
		slug := Slug(rec.Name)
		if slug == "" {
			report.Skipped++
			l.logger.Warn("skipping record with empty slug", zap.Int("index", i))
			continue
		}

		spot := toSpot(slug, rec)
		if pos, ok := index[slug]; ok {
			report.Skipped++
			spots[pos] = spot
			continue
		}
		index[slug] = len(spots)
		spots = append(spots, spot)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for start := 0; start < len(spots); start += l.batchSize {
		end := min(start+l.batchSize, len(spots))
		batch := spots[start:end]
		report.Batches++

		g.Go(func() error {
			if err := l.repo.UpsertBatch(gctx, batch); err != nil {
				return fmt.Errorf("upsert batch at %d: %w", start, err)
			}
			l.logger.Debug("batch stored", zap.Int("offset", start), zap.Int("size", len(batch)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	report.Loaded = len(spots)
	l.logger.Info("ingest complete",
		zap.Int("total", report.Total),
		zap.Int("loaded", report.Loaded),
		zap.Int("skipped", report.Skipped),
		zap.Int("batches", report.Batches),
	)
	return report, nil
}

// validURLs keeps the well-formed entries of urls in order.
func (l *Loader) validURLs(index int, urls []string) []string {
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if err := l.validate.Var(u, "required,url"); err != nil {
			l.logger.Warn("dropping malformed image url", zap.Int("index", index), zap.String("url", u))
			continue
		}
		kept = append(kept, u)
	}
	return kept
}

func toSpot(slug string, rec Record) db_models.TouristSpot {
	return db_models.TouristSpot{
		Slug:           slug,
		Name:           rec.Name,
		Type:           rec.Type,
		Address:        rec.Address,
		District:       rec.District,
		City:           rec.City,
		Province:       rec.Province,
		Grade:          rec.Grade,
		AGADivision:    rec.AGADivision,
		LocalAuthority: rec.LocalAuthority,
		SourceFile:     rec.SourceFile,
		ImageURLs:      rec.ImageURLs,
	}
}
