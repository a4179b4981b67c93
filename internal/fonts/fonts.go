package fonts

import (
	"fmt"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"qrpagemaker/internal/constants"
	apperrors "qrpagemaker/internal/errors"
)

// Manager resolves a font once at setup and hands out cached faces at
// the sizes the layout needs. A missing or unparsable custom font is
// never an error for the caller: the manager logs a warning and falls
// back to the embedded Go Regular face.
type Manager struct {
	path   string
	parsed *opentype.Font
	faces  *cache.Cache
	logger *logrus.Logger
}

// NewManager creates a font manager for the given font path. An empty
// path selects the built-in default font.
func NewManager(path string, logger *logrus.Logger) (*Manager, error) {
	data := goregular.TTF

	if path != "" {
		custom, err := os.ReadFile(path)
		if err != nil {
			logger.Warnf("Font not found at %s. Using default font: %v",
				path, &apperrors.FontLoadError{Path: path, Err: err})
			path = ""
		} else {
			data = custom
		}
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		if path == "" {
			// The embedded face failed to parse, nothing left to fall back to.
			return nil, fmt.Errorf("parse built-in font: %w", err)
		}
		logger.Warnf("Failed to load font from %s. Using default font: %v",
			path, &apperrors.FontLoadError{Path: path, Err: err})
		path = ""
		parsed, err = opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse built-in font: %w", err)
		}
	}

	return &Manager{
		path:   path,
		parsed: parsed,
		faces:  cache.New(constants.FaceCacheExpiration*time.Minute, constants.FaceCacheCleanupInterval*time.Minute),
		logger: logger,
	}, nil
}

// Path returns the path of the font in use, empty for the built-in face
func (m *Manager) Path() string {
	return m.path
}

// Face returns a rendering face at the given pixel size
func (m *Manager) Face(size int) (font.Face, error) {
	key := fmt.Sprintf("face_%d", size)

	if data, found := m.faces.Get(key); found {
		if face, ok := data.(font.Face); ok {
			return face, nil
		}
	}

	face, err := opentype.NewFace(m.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face at %dpx: %w", size, err)
	}

	m.faces.Set(key, face, cache.DefaultExpiration)
	m.logger.Debugf("Created font face at %dpx", size)
	return face, nil
}
