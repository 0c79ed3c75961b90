package upload

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesTimestampedFile(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	name, err := storage.Save(strings.NewReader("photo bytes"), "site visit 1.jpg")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+-site_visit_1\.jpg$`), name)
	assert.Equal(t, "/uploads/"+name, storage.URL(name))

	content, err := os.ReadFile(filepath.Join(storage.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "photo bytes", string(content))
}

func TestNewStorageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"plain.jpg":             "plain.jpg",
		"with space.png":        "with_space.png",
		"tabs\tand  runs.pdf":   "tabs_and_runs.pdf",
		"../../etc/passwd":      "passwd",
		"/abs/path/drawing.dwg": "drawing.dwg",
		"":                      "file",
	}

	for in, want := range cases {
		assert.Equal(t, want, Sanitize(in), "input %q", in)
	}
}
