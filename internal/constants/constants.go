package constants

const (
	// Page constants (US Letter at 300 DPI)
	DefaultPageWidth  = 2550
	DefaultPageHeight = 3300
	DefaultDPI        = 300
	DefaultTopMargin  = 300
	DefaultSideMargin = 300

	// Title text constants
	DefaultTitleFontSize = 150
	TitleWrapChars       = 30
	TitleLineGap         = 20

	// URL text constants
	DefaultURLFontSize = 80
	MinURLFontSize     = 40
	FontSizeStep       = 2
	URLWrapChars       = 60
	URLLineGap         = 10

	// QR constants
	DefaultQRTargetSize = 2000
	DefaultQRBorder     = 20
	TitleQRPadding      = 100
	QRURLPadding        = 100

	// Font face cache constants
	FaceCacheExpiration      = 30 // minutes
	FaceCacheCleanupInterval = 10 // minutes

	// Output constants
	DefaultOutputDir = "output"
	OutputExtension  = ".png"
)
