package config

// Config represents the application configuration
type Config struct {
	Page      PageConfig `mapstructure:"page"`
	Text      TextConfig `mapstructure:"text"`
	QR        QRConfig   `mapstructure:"qr"`
	FontPath  string     `mapstructure:"font_path"`
	OutputDir string     `mapstructure:"output_dir"`
	LogLevel  string     `mapstructure:"log_level"`
}

// PageConfig holds the fixed page geometry, in pixels
type PageConfig struct {
	Width      int `mapstructure:"width"`
	Height     int `mapstructure:"height"`
	DPI        int `mapstructure:"dpi"`
	TopMargin  int `mapstructure:"top_margin"`
	SideMargin int `mapstructure:"side_margin"`
}

// TextConfig holds font sizing and wrapping parameters
type TextConfig struct {
	TitleFontSize  int `mapstructure:"title_font_size"`
	URLFontSize    int `mapstructure:"url_font_size"`
	MinURLFontSize int `mapstructure:"min_url_font_size"`
	FontSizeStep   int `mapstructure:"font_size_step"`
	TitleWrapChars int `mapstructure:"title_wrap_chars"`
	URLWrapChars   int `mapstructure:"url_wrap_chars"`
	TitleLineGap   int `mapstructure:"title_line_gap"`
	URLLineGap     int `mapstructure:"url_line_gap"`
}

// QRConfig holds QR rendering parameters
type QRConfig struct {
	TargetSize  int `mapstructure:"target_size"`
	BorderWidth int `mapstructure:"border_width"`
}

// ContentWidth returns the horizontal pixel budget available to text
func (c *Config) ContentWidth() int {
	return c.Page.Width - 2*c.Page.SideMargin
}
