package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "qrpagemaker/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2550, cfg.Page.Width)
	assert.Equal(t, 3300, cfg.Page.Height)
	assert.Equal(t, 300, cfg.Page.DPI)
	assert.Equal(t, 150, cfg.Text.TitleFontSize)
	assert.Equal(t, 80, cfg.Text.URLFontSize)
	assert.Equal(t, 40, cfg.Text.MinURLFontSize)
	assert.Equal(t, 2000, cfg.QR.TargetSize)
	assert.Equal(t, 20, cfg.QR.BorderWidth)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 1950, cfg.ContentWidth())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("QRPAGES_OUTPUT_DIR", "/tmp/pages")
	t.Setenv("QRPAGES_FONT_PATH", "/tmp/font.ttf")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pages", cfg.OutputDir)
	assert.Equal(t, "/tmp/font.ttf", cfg.FontPath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("QRPAGES_TEXT_MIN_URL_FONT_SIZE", "200")

	_, err := Load()
	require.Error(t, err)

	var cfgErr *apperrors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}
