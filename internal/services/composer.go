package services

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"qrpagemaker/internal/config"
	"qrpagemaker/internal/constants"
	"qrpagemaker/internal/fonts"
	"qrpagemaker/internal/models"
)

// ComposerService lays out a title block, a bordered QR code, and the
// URL text vertically on a fixed-size transparent canvas. It performs
// no file I/O; the returned canvas belongs to the caller.
type ComposerService struct {
	cfg     *config.Config
	fonts   *fonts.Manager
	encoder *EncoderService
	fitter  *TextFitter
	logger  *logrus.Logger
}

// NewComposerService creates a new page composer
func NewComposerService(cfg *config.Config, fontMgr *fonts.Manager, encoder *EncoderService, fitter *TextFitter, logger *logrus.Logger) *ComposerService {
	return &ComposerService{
		cfg:     cfg,
		fonts:   fontMgr,
		encoder: encoder,
		fitter:  fitter,
		logger:  logger,
	}
}

// Compose renders one full page for the request. Each composition is a
// pure function of its inputs and the resolved font: a fresh canvas is
// created per request and never reused.
func (s *ComposerService) Compose(req models.PageRequest) (*image.RGBA, error) {
	pageW := s.cfg.Page.Width
	pageH := s.cfg.Page.Height

	canvas := image.NewRGBA(image.Rect(0, 0, pageW, pageH))
	dc := gg.NewContextForRGBA(canvas)
	dc.SetColor(color.Black)

	// Title block. An empty title yields no lines and the cursor stays
	// at the top margin.
	titleFace, err := s.fonts.Face(s.cfg.Text.TitleFontSize)
	if err != nil {
		return nil, err
	}
	titleBlock, err := s.fitter.FitTitle(req.Title)
	if err != nil {
		return nil, err
	}

	cursor := s.cfg.Page.TopMargin
	dc.SetFontFace(titleFace)
	for i, line := range titleBlock.Lines {
		s.drawCentered(dc, titleFace, line, cursor)
		cursor += titleBlock.LineHeights[i] + s.cfg.Text.TitleLineGap
	}

	// Bordered QR block, centered below the title.
	qrImg, err := s.encoder.Encode(req.URL, s.cfg.QR.TargetSize)
	if err != nil {
		return nil, err
	}
	bordered := s.borderQR(qrImg)

	qrSide := bordered.Bounds().Dx()
	qrX := (pageW - qrSide) / 2
	qrY := cursor + constants.TitleQRPadding
	if qrY+qrSide > pageH {
		s.logger.Warnf("QR block extends %dpx past the page bottom, clipping", qrY+qrSide-pageH)
	}
	draw.Draw(canvas, image.Rect(qrX, qrY, qrX+qrSide, qrY+qrSide), bordered, image.Point{}, draw.Over)
	cursor = qrY + qrSide + constants.QRURLPadding

	// URL block, shrink-to-fit, centered below the QR.
	urlBlock, err := s.fitter.FitURL(req.URL, s.cfg.ContentWidth())
	if err != nil {
		return nil, err
	}
	urlFace, err := s.fonts.Face(urlBlock.FontSize)
	if err != nil {
		return nil, err
	}
	if cursor+urlBlock.TotalHeight > pageH {
		s.logger.Warnf("URL block extends %dpx past the page bottom, clipping", cursor+urlBlock.TotalHeight-pageH)
	}
	dc.SetFontFace(urlFace)
	for i, line := range urlBlock.Lines {
		s.drawCentered(dc, urlFace, line, cursor)
		cursor += urlBlock.LineHeights[i] + s.cfg.Text.URLLineGap
	}

	s.logger.Debugf("Composed page for %q: title lines %d, URL font %dpx", req.Title, len(titleBlock.Lines), urlBlock.FontSize)
	return canvas, nil
}

// drawCentered draws one line horizontally centered with the top of its
// glyph box at topY
func (s *ComposerService) drawCentered(dc *gg.Context, face font.Face, line string, topY int) {
	bounds, _ := font.BoundString(face, line)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	x := float64(s.cfg.Page.Width-w)/2 - float64(bounds.Min.X.Floor())
	// Min.Y is negative above the baseline, so the baseline sits at
	// topY + ascent.
	y := float64(topY) - float64(bounds.Min.Y.Floor())
	dc.DrawString(line, x, y)
}

// borderQR composites the QR onto a square with an opaque black ring of
// the configured width. The interior stays transparent outside the dark
// modules so the page background shows through.
func (s *ComposerService) borderQR(qrImg *image.RGBA) *image.RGBA {
	border := s.cfg.QR.BorderWidth
	side := qrImg.Bounds().Dx() + 2*border
	out := image.NewRGBA(image.Rect(0, 0, side, side))

	black := &image.Uniform{C: color.RGBA{0, 0, 0, 255}}
	draw.Draw(out, image.Rect(0, 0, side, border), black, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, side-border, side, side), black, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, border, border, side-border), black, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(side-border, border, side, side-border), black, image.Point{}, draw.Src)

	inner := image.Rect(border, border, side-border, side-border)
	draw.Draw(out, inner, qrImg, image.Point{}, draw.Over)
	return out
}
