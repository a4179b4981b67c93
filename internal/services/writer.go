package services

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"qrpagemaker/internal/config"
	"qrpagemaker/internal/constants"
	apperrors "qrpagemaker/internal/errors"
	"qrpagemaker/internal/helpers"
	"qrpagemaker/pkg/pngdpi"
)

// WriterService persists composed pages as DPI-tagged PNG files
type WriterService struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewWriterService creates a new page writer
func NewWriterService(cfg *config.Config, logger *logrus.Logger) *WriterService {
	return &WriterService{
		cfg:    cfg,
		logger: logger,
	}
}

// EnsureDir creates the output directory before any processing begins
func (s *WriterService) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &apperrors.FilesystemError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// Save writes the image to <dir>/<sanitized title>.png and returns the
// path. When the title sanitizes to nothing the filename is derived
// from the URL instead. Colliding filenames silently overwrite.
func (s *WriterService) Save(img image.Image, dir, title, url string) (string, error) {
	name := helpers.CleanFilename(title)
	if name == "" {
		name = helpers.CleanURL(url)
	}
	if name == "" {
		name = "qr-page"
	}
	path := filepath.Join(dir, name+constants.OutputExtension)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", &apperrors.FilesystemError{Op: "encode", Path: path, Err: err}
	}

	data, err := pngdpi.Tag(buf.Bytes(), s.cfg.Page.DPI)
	if err != nil {
		return "", &apperrors.FilesystemError{Op: "tag", Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &apperrors.FilesystemError{Op: "write", Path: path, Err: err}
	}

	s.logger.Debugf("Saved %s (%d bytes, %d DPI)", path, len(data), s.cfg.Page.DPI)
	return path, nil
}
