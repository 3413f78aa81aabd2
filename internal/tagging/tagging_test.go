package tagging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundvault/soundvault/internal/domain"
)

func TestApply_UnsupportedFormatIsNoOp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WAVE"), 0644))

	song := &domain.Song{Title: "New Title", Artist: "New Artist"}
	require.NoError(t, Apply(path, song, nil))

	// The file must be untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF....WAVE"), data)
}

func TestApply_MissingFile(t *testing.T) {
	song := &domain.Song{Title: "Title"}

	assert.Error(t, Apply(filepath.Join(t.TempDir(), "missing.mp3"), song, nil))
	assert.Error(t, Apply(filepath.Join(t.TempDir(), "missing.flac"), song, nil))
}

func TestApply_CorruptFLAC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.flac")
	require.NoError(t, os.WriteFile(path, []byte("not a flac stream"), 0644))

	err := Apply(path, &domain.Song{Title: "Title"}, nil)
	assert.Error(t, err)
}

func TestDetectMIME(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	assert.Equal(t, "image/png", detectMIME(png))

	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0}
	assert.Equal(t, "image/jpeg", detectMIME(jpeg))
}
