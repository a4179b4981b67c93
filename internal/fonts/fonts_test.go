package fonts

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestNewManagerDefaultFont(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()

	mgr, err := NewManager("", logger)
	require.NoError(t, err)
	assert.Equal(t, "", mgr.Path())
}

func TestNewManagerMissingFontFallsBack(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()

	mgr, err := NewManager(filepath.Join(t.TempDir(), "missing.ttf"), logger)
	require.NoError(t, err, "a missing font must never fail the request")
	assert.Equal(t, "", mgr.Path(), "manager should report the built-in font")

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestFaceRendersMeasurableText(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()
	mgr, err := NewManager("", logger)
	require.NoError(t, err)

	face, err := mgr.Face(80)
	require.NoError(t, err)

	adv := font.MeasureString(face, "example")
	assert.Greater(t, adv.Ceil(), 0)
}

func TestFaceIsCachedPerSize(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()
	mgr, err := NewManager("", logger)
	require.NoError(t, err)

	first, err := mgr.Face(42)
	require.NoError(t, err)
	second, err := mgr.Face(42)
	require.NoError(t, err)

	assert.Same(t, first, second)
}
