package services

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"qrpagemaker/internal/config"
	apperrors "qrpagemaker/internal/errors"
	"qrpagemaker/internal/models"
)

// BatchProcessor generates one page per CSV row, sequentially and in
// file order. Malformed rows and unencodable URLs are skipped with a
// log line; filesystem failures abort the run.
type BatchProcessor struct {
	cfg      *config.Config
	composer *ComposerService
	writer   *WriterService
	logger   *logrus.Logger
}

// NewBatchProcessor creates a new CSV batch processor
func NewBatchProcessor(cfg *config.Config, composer *ComposerService, writer *WriterService, logger *logrus.Logger) *BatchProcessor {
	return &BatchProcessor{
		cfg:      cfg,
		composer: composer,
		writer:   writer,
		logger:   logger,
	}
}

// ProcessCSV reads a headerless CSV of (title, URL) rows and composes a
// page for each valid one. An unreadable file is fatal; everything
// row-level is skip-and-continue.
func (p *BatchProcessor) ProcessCSV(path string) (*models.BatchSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &apperrors.InputError{Field: "csv_file", Message: err.Error()}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may be ragged, handled per row

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &apperrors.InputError{Field: "csv_file", Message: err.Error()}
	}

	summary := &models.BatchSummary{Total: len(rows)}

	for i, row := range rows {
		n := i + 1
		if len(row) < 2 {
			p.logger.Warnf("Skipping invalid row (%d/%d): %v", n, summary.Total, row)
			summary.Skipped++
			continue
		}

		title := strings.TrimSpace(row[0])
		url := strings.TrimSpace(row[1])
		if url == "" {
			p.logger.Warnf("Skipping row with empty URL (%d/%d): %s", n, summary.Total, title)
			summary.Skipped++
			continue
		}

		p.logger.Infof("Processing (%d/%d): %s - %s", n, summary.Total, title, url)

		img, err := p.composer.Compose(models.PageRequest{
			Title:     title,
			URL:       url,
			FontPath:  p.cfg.FontPath,
			OutputDir: p.cfg.OutputDir,
		})
		if err != nil {
			var encErr *apperrors.EncodingError
			if errors.As(err, &encErr) {
				// Same policy as malformed rows: skip and keep going.
				p.logger.Warnf("Skipping row with unencodable URL (%d/%d): %v", n, summary.Total, err)
				summary.Skipped++
				continue
			}
			return nil, err
		}

		savedPath, err := p.writer.Save(img, p.cfg.OutputDir, title, url)
		if err != nil {
			// Filesystem trouble affects every later row as well.
			return nil, err
		}

		p.logger.Infof("Saved: %s", filepath.Base(savedPath))
		summary.Generated++
	}

	p.logger.Infof("Batch complete: %d generated, %d skipped of %d rows", summary.Generated, summary.Skipped, summary.Total)
	return summary, nil
}
