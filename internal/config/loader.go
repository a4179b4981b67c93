package config

import (
	"strings"

	"github.com/spf13/viper"

	"qrpagemaker/internal/constants"
	apperrors "qrpagemaker/internal/errors"
)

// Load loads the configuration from environment variables with built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("QRPAGES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	v.SetDefault("page.width", constants.DefaultPageWidth)
	v.SetDefault("page.height", constants.DefaultPageHeight)
	v.SetDefault("page.dpi", constants.DefaultDPI)
	v.SetDefault("page.top_margin", constants.DefaultTopMargin)
	v.SetDefault("page.side_margin", constants.DefaultSideMargin)
	v.SetDefault("text.title_font_size", constants.DefaultTitleFontSize)
	v.SetDefault("text.url_font_size", constants.DefaultURLFontSize)
	v.SetDefault("text.min_url_font_size", constants.MinURLFontSize)
	v.SetDefault("text.font_size_step", constants.FontSizeStep)
	v.SetDefault("text.title_wrap_chars", constants.TitleWrapChars)
	v.SetDefault("text.url_wrap_chars", constants.URLWrapChars)
	v.SetDefault("text.title_line_gap", constants.TitleLineGap)
	v.SetDefault("text.url_line_gap", constants.URLLineGap)
	v.SetDefault("qr.target_size", constants.DefaultQRTargetSize)
	v.SetDefault("qr.border_width", constants.DefaultQRBorder)
	v.SetDefault("font_path", "")
	v.SetDefault("output_dir", constants.DefaultOutputDir)
	v.SetDefault("log_level", "info")

	cfg := &Config{
		Page: PageConfig{
			Width:      v.GetInt("page.width"),
			Height:     v.GetInt("page.height"),
			DPI:        v.GetInt("page.dpi"),
			TopMargin:  v.GetInt("page.top_margin"),
			SideMargin: v.GetInt("page.side_margin"),
		},
		Text: TextConfig{
			TitleFontSize:  v.GetInt("text.title_font_size"),
			URLFontSize:    v.GetInt("text.url_font_size"),
			MinURLFontSize: v.GetInt("text.min_url_font_size"),
			FontSizeStep:   v.GetInt("text.font_size_step"),
			TitleWrapChars: v.GetInt("text.title_wrap_chars"),
			URLWrapChars:   v.GetInt("text.url_wrap_chars"),
			TitleLineGap:   v.GetInt("text.title_line_gap"),
			URLLineGap:     v.GetInt("text.url_line_gap"),
		},
		QR: QRConfig{
			TargetSize:  v.GetInt("qr.target_size"),
			BorderWidth: v.GetInt("qr.border_width"),
		},
		FontPath:  strings.TrimSpace(v.GetString("font_path")),
		OutputDir: strings.TrimSpace(v.GetString("output_dir")),
		LogLevel:  v.GetString("log_level"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Page.Width <= 0 || cfg.Page.Height <= 0 {
		return &apperrors.ConfigError{Section: "page", Message: "page dimensions must be positive"}
	}
	if cfg.Page.DPI <= 0 {
		return &apperrors.ConfigError{Section: "page", Message: "dpi must be positive"}
	}
	if 2*cfg.Page.SideMargin >= cfg.Page.Width {
		return &apperrors.ConfigError{Section: "page", Message: "side margins leave no content width"}
	}
	if cfg.Text.TitleFontSize <= 0 || cfg.Text.URLFontSize <= 0 {
		return &apperrors.ConfigError{Section: "text", Message: "font sizes must be positive"}
	}
	if cfg.Text.MinURLFontSize > cfg.Text.URLFontSize {
		return &apperrors.ConfigError{Section: "text", Message: "min URL font size exceeds starting size"}
	}
	if cfg.Text.FontSizeStep <= 0 {
		return &apperrors.ConfigError{Section: "text", Message: "font size step must be positive"}
	}
	if cfg.Text.TitleWrapChars <= 0 || cfg.Text.URLWrapChars <= 0 {
		return &apperrors.ConfigError{Section: "text", Message: "wrap budgets must be positive"}
	}
	if cfg.QR.TargetSize <= 0 {
		return &apperrors.ConfigError{Section: "qr", Message: "QR target size must be positive"}
	}
	if cfg.QR.BorderWidth < 0 {
		return &apperrors.ConfigError{Section: "qr", Message: "QR border width cannot be negative"}
	}
	if cfg.OutputDir == "" {
		return &apperrors.ConfigError{Section: "output", Message: "output directory is required"}
	}
	return nil
}
