package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/assets"
)

// ErrEmptyKey is returned for a blank image key.
var ErrEmptyKey = errors.New("empty image key")

// LoadError reports an image that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("render: load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadImage loads an image from assets or filesystem and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, &LoadError{Path: key, Err: ErrEmptyKey}
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	src, err := decodeFromAssetsOrFS(key)
	if err != nil {
		return nil, &LoadError{Path: key, Err: err}
	}
	img := ebiten.NewImageFromImage(src)
	RegisterImage(key, img)
	return img, nil
}

func decodeFromAssetsOrFS(path string) (image.Image, error) {
	if img, err := assets.Decode(path); err == nil {
		return img, nil
	}
	return decodeFromFS(path)
}

func decodeFromFS(path string) (image.Image, error) {
	var lastErr error
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			// the file exists, so a decode failure is the real answer
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return im, nil
	}
	return nil, lastErr
}
