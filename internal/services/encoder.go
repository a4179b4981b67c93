package services

import (
	"image"
	"image/color"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	apperrors "qrpagemaker/internal/errors"
)

// EncoderService generates QR bitmaps ready for page composition
type EncoderService struct {
	logger *logrus.Logger
}

// NewEncoderService creates a new QR encoder service
func NewEncoderService(logger *logrus.Logger) *EncoderService {
	return &EncoderService{
		logger: logger,
	}
}

// Encode generates a QR code for the given URL as an RGBA image of at
// least native resolution: dark modules are opaque black, light modules
// (including the 4-module quiet zone) are fully transparent. The module
// grid is scaled by floor(targetPixelSize / nativeWidth), never below 1,
// so modules stay pixel-aligned and sharp.
func (s *EncoderService) Encode(url string, targetPixelSize int) (*image.RGBA, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &apperrors.EncodingError{Payload: url, Message: "payload is empty"}
	}

	// Highest recovery level (~30%) keeps the print scannable even when
	// partially damaged or obscured.
	code, err := qrcode.New(url, qrcode.Highest)
	if err != nil {
		s.logger.Errorf("Failed to encode QR payload: %v", err)
		return nil, &apperrors.EncodingError{Payload: url, Err: err}
	}

	grid := code.Bitmap()
	native := len(grid)
	scale := targetPixelSize / native
	if scale < 1 {
		scale = 1
	}

	side := native * scale
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	dark := color.RGBA{0, 0, 0, 255}

	for row := 0; row < native; row++ {
		for col := 0; col < native; col++ {
			if !grid[row][col] {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(col*scale+dx, row*scale+dy, dark)
				}
			}
		}
	}

	s.logger.Debugf("Encoded QR: %d modules, scale %d, %dpx output", native, scale, side)
	return img, nil
}
