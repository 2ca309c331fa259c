package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var timeNow = time.Now

// SaveImage writes the uploaded file under baseDir/subdir with a timestamp
// prefix and a sanitised filename, and returns the path relative to the
// static root, e.g. "uploads/news/20240501_120000_pic.png".
func SaveImage(fh *multipart.FileHeader, baseDir, subdir string) (string, error) {
	name := sanitizeFilename(fh.Filename)
	if name == "" {
		return "", fmt.Errorf("SaveImage: empty filename")
	}
	name = timeNow().Format("20060102_150405") + "_" + name

	dir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("SaveImage: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("SaveImage: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("SaveImage: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("SaveImage: %w", err)
	}
	return "uploads/" + subdir + "/" + name, nil
}

// Remove deletes a previously stored image given its static-relative path.
// A missing file is not an error.
func Remove(baseDir, relPath string) error {
	if relPath == "" {
		return nil
	}
	rel := strings.TrimPrefix(relPath, "uploads/")
	if err := os.Remove(filepath.Join(baseDir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("Remove: %w", err)
	}
	return nil
}

// sanitizeFilename strips path components and reduces the name to ASCII
// letters, digits, dots, dashes and underscores.
func sanitizeFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
