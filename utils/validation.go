package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
)

const (
	// MaxImageSize is the upload cap per image file.
	MaxImageSize = 5 * 1024 * 1024
	// MaxImagesPerProperty caps the image list on a single listing.
	MaxImagesPerProperty = 10
)

// ValidateImageUpload rejects malformed uploads before any store call is
// made: non-image content types and oversized files.
func ValidateImageUpload(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("file is not a valid image (content type %q)", contentType)
	}
	if size > MaxImageSize {
		return fmt.Errorf("file size exceeds %d MB limit", MaxImageSize/(1024*1024))
	}
	return nil
}

// GenerateImageFilename returns a collision-resistant object name of the
// form property_<unix-ms>_<random>.<ext>, keeping the original extension.
func GenerateImageFilename(originalName string) string {
	ext := strings.TrimPrefix(path.Ext(originalName), ".")
	if ext == "" {
		ext = "jpg"
	}

	buf := make([]byte, 6)
	_, _ = rand.Read(buf)

	return fmt.Sprintf("property_%d_%s.%s", time.Now().UnixMilli(), hex.EncodeToString(buf), ext)
}

// FilenameFromURL extracts the stored object name from a public image URL.
func FilenameFromURL(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx == -1 {
		return url
	}
	return url[idx+1:]
}
