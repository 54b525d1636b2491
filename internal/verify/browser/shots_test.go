package browser

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShotsRunDirNaming(t *testing.T) {
	base := t.TempDir()
	shots, err := NewShots(base, true)
	require.NoError(t, err)

	assert.DirExists(t, shots.Dir)
	assert.Equal(t, base, filepath.Dir(shots.Dir))

	runID := filepath.Base(shots.Dir)
	assert.Regexp(t, regexp.MustCompile(`^\d{8}-\d{6}-[0-9a-f]{8}$`), runID)
}

func TestNewShotsDistinctRuns(t *testing.T) {
	base := t.TempDir()
	a, err := NewShots(base, true)
	require.NoError(t, err)
	b, err := NewShots(base, true)
	require.NoError(t, err)
	assert.NotEqual(t, a.Dir, b.Dir)
}

func TestCaptureSkipsWhenDisabledOrPageless(t *testing.T) {
	shots, err := NewShots(t.TempDir(), false)
	require.NoError(t, err)
	// Run dir exists regardless: summary.json is written there.
	assert.DirExists(t, shots.Dir)
	assert.Equal(t, "", shots.Capture(nil, "01_initial_load"))

	var nilShots *Shots
	assert.Equal(t, "", nilShots.Capture(nil, "01_initial_load"))
}
