package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestSaveImage(t *testing.T) {
	restore := func() { timeNow = time.Now }

	t.Run("ok", func(t *testing.T) {
		defer restore()
		timeNow = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

		dir := t.TempDir()
		fh := fileHeader(t, "image", "my pic.png", "png-bytes")

		rel, err := SaveImage(fh, dir, "news")
		require.NoError(t, err)
		require.Equal(t, "uploads/news/20240501_120000_my_pic.png", rel)

		data, err := os.ReadFile(filepath.Join(dir, "news", "20240501_120000_my_pic.png"))
		require.NoError(t, err)
		require.Equal(t, "png-bytes", string(data))
	})

	t.Run("strips path components", func(t *testing.T) {
		defer restore()
		timeNow = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

		dir := t.TempDir()
		fh := fileHeader(t, "image", "../../etc/passwd", "x")

		rel, err := SaveImage(fh, dir, "products")
		require.NoError(t, err)
		require.Equal(t, "uploads/products/20240501_120000_passwd", rel)
	})

	t.Run("rejects name with nothing left", func(t *testing.T) {
		fh := fileHeader(t, "image", "<<<>>>", "x")

		_, err := SaveImage(fh, t.TempDir(), "news")
		require.Error(t, err)
	})
}

func TestRemove(t *testing.T) {
	t.Run("deletes stored file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "news"), 0o755))
		path := filepath.Join(dir, "news", "old.png")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		require.NoError(t, Remove(dir, "uploads/news/old.png"))
		_, err := os.Stat(path)
		require.True(t, os.IsNotExist(err))
	})

	t.Run("missing file is fine", func(t *testing.T) {
		require.NoError(t, Remove(t.TempDir(), "uploads/news/gone.png"))
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		require.NoError(t, Remove(t.TempDir(), ""))
	})
}
