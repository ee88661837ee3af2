package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// Save writes img as a lossless WebP file, creating parent directories.
func Save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imaging: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("imaging: WebP encode %s: %w", path, err)
	}
	return f.Close()
}
