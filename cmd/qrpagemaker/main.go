package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"qrpagemaker/internal/config"
	"qrpagemaker/internal/fonts"
	"qrpagemaker/internal/models"
	"qrpagemaker/internal/services"
	"qrpagemaker/internal/validation"
)

var version = "v1.0.0"

func main() {
	root := &cobra.Command{
		Use:   "qrpagemaker",
		Short: "Generate printable QR code pages from titles and URLs",
	}

	var fontPath, outputDir string
	root.PersistentFlags().StringVar(&fontPath, "font", "", "Path to a TTF/OTF font file (optional, built-in font by default)")
	root.PersistentFlags().StringVarP(&outputDir, "out", "o", "", "Directory for generated images")

	// --- single command ------------------------------------------------------
	var title, url string
	singleCmd := &cobra.Command{
		Use:   "single",
		Short: "Generate one QR page from a title and URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingle(title, url, fontPath, outputDir)
		},
	}
	singleCmd.Flags().StringVarP(&title, "title", "t", "", "Page title")
	singleCmd.Flags().StringVarP(&url, "url", "u", "", "URL to encode")
	root.AddCommand(singleCmd)

	// --- batch command -------------------------------------------------------
	batchCmd := &cobra.Command{
		Use:   "batch [csv-file]",
		Short: "Generate QR pages for every (title, URL) row of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0], fontPath, outputDir)
		},
	}
	root.AddCommand(batchCmd)

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qrpagemaker %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runSingle validates one request, composes it, and saves the page
func runSingle(title, url, fontPath, outputDir string) error {
	cfg, logger, err := setup(fontPath, outputDir)
	if err != nil {
		return err
	}

	req := models.PageRequest{
		Title:     title,
		URL:       url,
		FontPath:  cfg.FontPath,
		OutputDir: cfg.OutputDir,
	}
	if err := validation.ValidateRequest(&req); err != nil {
		return err
	}

	fontMgr, composer, writer := buildServices(cfg, logger)

	if err := writer.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	logger.Infof("Generating page for %q (font: %s)", req.Title, fontLabel(fontMgr))
	img, err := composer.Compose(req)
	if err != nil {
		return err
	}

	path, err := writer.Save(img, cfg.OutputDir, req.Title, req.URL)
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}

// runBatch processes every row of the CSV file
func runBatch(csvPath, fontPath, outputDir string) error {
	cfg, logger, err := setup(fontPath, outputDir)
	if err != nil {
		return err
	}

	fontMgr, composer, writer := buildServices(cfg, logger)

	if err := writer.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	logger.Infof("Processing %s into %s (font: %s)", csvPath, cfg.OutputDir, fontLabel(fontMgr))
	processor := services.NewBatchProcessor(cfg, composer, writer, logger)
	summary, err := processor.ProcessCSV(csvPath)
	if err != nil {
		return err
	}

	fmt.Printf("%d generated, %d skipped of %d rows\n", summary.Generated, summary.Skipped, summary.Total)
	return nil
}

// setup loads configuration, applies flag overrides, and builds the logger
func setup(fontPath, outputDir string) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if fontPath != "" {
		cfg.FontPath = fontPath
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	return cfg, setupLogger(cfg.LogLevel), nil
}

// buildServices wires the composition pipeline
func buildServices(cfg *config.Config, logger *logrus.Logger) (*fonts.Manager, *services.ComposerService, *services.WriterService) {
	fontMgr, err := fonts.NewManager(cfg.FontPath, logger)
	if err != nil {
		logger.Fatal("Failed to load fonts:", err)
	}

	encoder := services.NewEncoderService(logger)
	fitter := services.NewTextFitter(cfg, fontMgr, logger)
	composer := services.NewComposerService(cfg, fontMgr, encoder, fitter, logger)
	writer := services.NewWriterService(cfg, logger)
	return fontMgr, composer, writer
}

// fontLabel names the font in use for log output
func fontLabel(fontMgr *fonts.Manager) string {
	if fontMgr.Path() == "" {
		return "built-in"
	}
	return fontMgr.Path()
}

// setupLogger sets up the logger
func setupLogger(logLevel string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.Printf("Invalid log level %s, defaulting to info", logLevel)
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return logger
}
