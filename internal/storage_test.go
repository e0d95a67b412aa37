package internal

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeaders(t *testing.T, files map[string][]byte) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile("mediaFiles", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["mediaFiles"]
}

func TestMediaStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	media := NewMediaStore(dir)

	content := []byte("fake jpeg bytes")
	fhs := makeFileHeaders(t, map[string][]byte{"pothole.jpg": content})
	require.Len(t, fhs, 1)

	att, err := media.Save(fhs[0])
	require.NoError(t, err)

	assert.Equal(t, "pothole.jpg", att.OriginalName)
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+-pothole\.jpg$`), att.Filename)
	assert.Equal(t, "/uploads/"+att.Filename, att.URL)

	stored, err := os.ReadFile(filepath.Join(dir, att.Filename))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestMediaStoreCreatesDirOnFirstUse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	media := NewMediaStore(dir)

	_, err := os.Stat(dir)
	require.True(t, os.IsNotExist(err))

	fhs := makeFileHeaders(t, map[string][]byte{"clip.mp4": []byte("video")})
	_, err = media.Save(fhs[0])
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMediaStoreUniqueNamesForSameOriginal(t *testing.T) {
	media := NewMediaStore(filepath.Join(t.TempDir(), "uploads"))

	fhs := makeFileHeaders(t, map[string][]byte{"same.jpg": []byte("one")})
	a, err := media.Save(fhs[0])
	require.NoError(t, err)
	b, err := media.Save(fhs[0])
	require.NoError(t, err)

	assert.NotEqual(t, a.Filename, b.Filename)
}

func TestMediaStoreStripsPathFromOriginalName(t *testing.T) {
	media := NewMediaStore(filepath.Join(t.TempDir(), "uploads"))

	fhs := makeFileHeaders(t, map[string][]byte{"../../etc/passwd": []byte("x")})
	att, err := media.Save(fhs[0])
	require.NoError(t, err)

	assert.Equal(t, "passwd", att.OriginalName)
	assert.NotContains(t, att.Filename, "/")
}
