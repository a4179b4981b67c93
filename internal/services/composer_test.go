package services

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrpagemaker/internal/models"
	"qrpagemaker/pkg/pngdpi"
)

// hasOpaqueInStripe reports whether any pixel in rows [yMin, yMax) is
// not fully transparent
func hasOpaqueInStripe(img *image.RGBA, yMin, yMax int) bool {
	bounds := img.Bounds()
	if yMax > bounds.Max.Y {
		yMax = bounds.Max.Y
	}
	for y := yMin; y < yMax; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}

func TestComposeFullPageLayout(t *testing.T) {
	cfg := testConfig()
	composer, _, _, _ := testPipeline(t, cfg)

	page, err := composer.Compose(models.PageRequest{Title: "Team Meeting", URL: "https://example.com/meet"})
	require.NoError(t, err)

	assert.Equal(t, cfg.Page.Width, page.Bounds().Dx())
	assert.Equal(t, cfg.Page.Height, page.Bounds().Dy())

	// Title text starts at the top margin.
	assert.True(t, hasOpaqueInStripe(page, cfg.Page.TopMargin, 600), "expected title ink below the top margin")

	// The bordered QR dominates the middle of the page.
	assert.True(t, hasOpaqueInStripe(page, 1400, 1600), "expected QR ink mid-page")

	// The URL text sits below the QR block.
	assert.True(t, hasOpaqueInStripe(page, 2620, 3000), "expected URL ink below the QR block")

	// Nothing renders above the top margin.
	assert.False(t, hasOpaqueInStripe(page, 0, cfg.Page.TopMargin), "the top margin must stay blank")
}

func TestComposeEmptyTitleKeepsLayout(t *testing.T) {
	cfg := testConfig()
	composer, _, _, _ := testPipeline(t, cfg)

	page, err := composer.Compose(models.PageRequest{Title: "", URL: "https://example.com/meet"})
	require.NoError(t, err)

	// With no title lines the QR starts right after the top margin gap.
	assert.False(t, hasOpaqueInStripe(page, 0, cfg.Page.TopMargin))
	assert.True(t, hasOpaqueInStripe(page, cfg.Page.TopMargin+100, cfg.Page.TopMargin+200))
}

func TestComposeUnencodableURLFails(t *testing.T) {
	cfg := testConfig()
	composer, _, _, _ := testPipeline(t, cfg)

	_, err := composer.Compose(models.PageRequest{Title: "x", URL: "   "})
	assert.Error(t, err)
}

func TestComposeIsDeterministic(t *testing.T) {
	cfg := testConfig()
	composer, _, _, _ := testPipeline(t, cfg)
	req := models.PageRequest{Title: "Team Meeting", URL: "https://example.com/meet"}

	first, err := composer.Compose(req)
	require.NoError(t, err)
	second, err := composer.Compose(req)
	require.NoError(t, err)

	assert.Equal(t, first.Pix, second.Pix, "identical inputs must render identical pages")
}

func TestComposeAndSaveEndToEnd(t *testing.T) {
	cfg := testConfig()
	cfg.OutputDir = t.TempDir()
	composer, writer, _, _ := testPipeline(t, cfg)

	page, err := composer.Compose(models.PageRequest{Title: "Team Meeting", URL: "https://example.com/meet"})
	require.NoError(t, err)

	path, err := writer.Save(page, cfg.OutputDir, "Team Meeting", "https://example.com/meet")
	require.NoError(t, err)
	assert.Equal(t, "Team Meeting.png", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, cfg.Page.Width, decoded.Bounds().Dx())
	assert.Equal(t, cfg.Page.Height, decoded.Bounds().Dy())

	dpi, err := pngdpi.Resolution(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Page.DPI, dpi)
}

func TestSaveFallsBackToURLFilename(t *testing.T) {
	cfg := testConfig()
	cfg.OutputDir = t.TempDir()
	_, writer, _, _ := testPipeline(t, cfg)

	page := image.NewRGBA(image.Rect(0, 0, 8, 8))
	path, err := writer.Save(page, cfg.OutputDir, "???", "https://example.com/meet")
	require.NoError(t, err)
	assert.Equal(t, "examplecom_meet.png", filepath.Base(path))
}

func TestSaveOverwritesCollidingFilenames(t *testing.T) {
	cfg := testConfig()
	cfg.OutputDir = t.TempDir()
	_, writer, _, _ := testPipeline(t, cfg)

	page := image.NewRGBA(image.Rect(0, 0, 8, 8))
	first, err := writer.Save(page, cfg.OutputDir, "Same Title!", "https://example.com/a")
	require.NoError(t, err)
	second, err := writer.Save(page, cfg.OutputDir, "Same Title?", "https://example.com/b")
	require.NoError(t, err)

	assert.Equal(t, first, second, "colliding titles overwrite the same file")

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
