package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"qrpagemaker/internal/config"
	"qrpagemaker/internal/fonts"
)

// testConfig mirrors the default configuration so tests do not depend
// on the environment
func testConfig() *config.Config {
	return &config.Config{
		Page: config.PageConfig{Width: 2550, Height: 3300, DPI: 300, TopMargin: 300, SideMargin: 300},
		Text: config.TextConfig{
			TitleFontSize:  150,
			URLFontSize:    80,
			MinURLFontSize: 40,
			FontSizeStep:   2,
			TitleWrapChars: 30,
			URLWrapChars:   60,
			TitleLineGap:   20,
			URLLineGap:     10,
		},
		QR:       config.QRConfig{TargetSize: 2000, BorderWidth: 20},
		LogLevel: "info",
	}
}

// testPipeline builds the full composition pipeline on the built-in
// font with a silenced logger
func testPipeline(t *testing.T, cfg *config.Config) (*ComposerService, *WriterService, *logrus.Logger, *logrustest.Hook) {
	t.Helper()

	logger, hook := logrustest.NewNullLogger()

	fontMgr, err := fonts.NewManager(cfg.FontPath, logger)
	require.NoError(t, err)

	encoder := NewEncoderService(logger)
	fitter := NewTextFitter(cfg, fontMgr, logger)
	composer := NewComposerService(cfg, fontMgr, encoder, fitter, logger)
	writer := NewWriterService(cfg, logger)
	return composer, writer, logger, hook
}
