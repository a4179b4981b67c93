package models

// PageRequest describes one page to compose. Title and URL must be
// non-empty after trimming. FontPath and OutputDir travel with the
// request for the caller's benefit: the font is resolved once at setup
// and the composer itself never touches the filesystem.
type PageRequest struct {
	Title     string
	URL       string
	FontPath  string
	OutputDir string
}

// FittedTextBlock is the result of fitting wrapped text into a pixel
// width budget. Either every line's rendered width fits the budget, or
// FontSize equals the configured floor and the widest line overflows.
type FittedTextBlock struct {
	Lines       []string
	LineHeights []int
	FontSize    int
	TotalHeight int
}

// BatchSummary reports the outcome of one CSV run
type BatchSummary struct {
	Total     int
	Generated int
	Skipped   int
}
