package render

import "github.com/hajimehoshi/ebiten/v2"

// images caches every loaded image by its load key for the life of the
// process. Nothing is evicted, and it is only touched from the game loop so
// it has no lock.
var images = map[string]*ebiten.Image{}

// RegisterImage caches img under key. Empty keys and nil images are dropped.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns the image LoadImage cached under key, or nil.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}
