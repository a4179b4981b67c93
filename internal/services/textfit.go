package services

import (
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"qrpagemaker/internal/config"
	"qrpagemaker/internal/fonts"
	"qrpagemaker/internal/models"
)

// TextFitter wraps text into lines and fits them to the page's pixel
// width budget, shrinking the URL font size down to a floor when needed
type TextFitter struct {
	cfg    *config.Config
	fonts  *fonts.Manager
	logger *logrus.Logger
}

// NewTextFitter creates a new text fitter
func NewTextFitter(cfg *config.Config, fontMgr *fonts.Manager, logger *logrus.Logger) *TextFitter {
	return &TextFitter{
		cfg:    cfg,
		fonts:  fontMgr,
		logger: logger,
	}
}

// WrapText greedily wraps text at whitespace boundaries so that no line
// exceeds maxChars characters. Words are kept intact unless a single
// word is longer than the whole budget, in which case it is hard-split
// at the budget (URLs contain no spaces and rely on this). Returns nil
// for blank input.
func WrapText(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	current := ""

	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) > maxChars {
			flush()
			runes := []rune(word)
			for len(runes) > maxChars {
				lines = append(lines, string(runes[:maxChars]))
				runes = runes[maxChars:]
			}
			current = string(runes)
			continue
		}
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= maxChars:
			current += " " + word
		default:
			flush()
			current = word
		}
	}
	flush()

	return lines
}

// FitTitle wraps and measures a title at the fixed title font size.
// Titles never shrink; the character budget alone bounds their width.
func (f *TextFitter) FitTitle(title string) (*models.FittedTextBlock, error) {
	face, err := f.fonts.Face(f.cfg.Text.TitleFontSize)
	if err != nil {
		return nil, err
	}

	lines := WrapText(title, f.cfg.Text.TitleWrapChars)
	return f.buildBlock(face, lines, f.cfg.Text.TitleFontSize, f.cfg.Text.TitleLineGap), nil
}

// FitURL wraps a URL at the fixed character budget, then iteratively
// shrinks the font size until every wrapped line's rendered width fits
// maxPixelWidth or the size floor is reached. The first size that fits
// wins; when the floor is hit, overflowing lines are emitted as-is.
func (f *TextFitter) FitURL(url string, maxPixelWidth int) (*models.FittedTextBlock, error) {
	lines := WrapText(url, f.cfg.Text.URLWrapChars)
	floor := f.cfg.Text.MinURLFontSize
	size := f.cfg.Text.URLFontSize

	var face font.Face
	for {
		var err error
		face, err = f.fonts.Face(size)
		if err != nil {
			return nil, err
		}
		if f.linesFit(face, lines, maxPixelWidth) || size <= floor {
			break
		}
		size -= f.cfg.Text.FontSizeStep
		if size < floor {
			size = floor
		}
	}

	if !f.linesFit(face, lines, maxPixelWidth) {
		f.logger.Warnf("URL text still exceeds %dpx at the %dpx font floor, emitting overflowing line", maxPixelWidth, floor)
	}

	return f.buildBlock(face, lines, size, f.cfg.Text.URLLineGap), nil
}

// linesFit reports whether every line's rendered width is within budget
func (f *TextFitter) linesFit(face font.Face, lines []string, maxPixelWidth int) bool {
	for _, line := range lines {
		w, _ := measureString(face, line)
		if w > maxPixelWidth {
			return false
		}
	}
	return true
}

// buildBlock measures each line's glyph-box height and totals the block
// height including the fixed gap between lines
func (f *TextFitter) buildBlock(face font.Face, lines []string, size, gap int) *models.FittedTextBlock {
	block := &models.FittedTextBlock{
		Lines:       lines,
		LineHeights: make([]int, 0, len(lines)),
		FontSize:    size,
	}
	for _, line := range lines {
		_, h := measureString(face, line)
		block.LineHeights = append(block.LineHeights, h)
		block.TotalHeight += h + gap
	}
	if len(lines) > 0 {
		block.TotalHeight -= gap
	}
	return block
}

// measureString returns the pixel width and height of the glyph
// bounding box of the rendered string. Height follows the actual
// ascent-to-descent extent of the text, not a fixed line-height
// constant, so spacing adapts to the font in use.
func measureString(face font.Face, s string) (width, height int) {
	bounds, _ := font.BoundString(face, s)
	width = (bounds.Max.X - bounds.Min.X).Ceil()
	height = (bounds.Max.Y - bounds.Min.Y).Ceil()
	return width, height
}
