package mask

import (
	"fmt"

	"chosenoffset.com/spritemask/internal/render"
)

// Library maps mask kinds to backend textures. Textures are created once
// and live until Dispose.
type Library struct {
	textures map[Kind]render.Image
}

// NewLibrary uploads every built-in pattern through r.
func NewLibrary(r render.Renderer) *Library {
	lib := &Library{textures: make(map[Kind]render.Image, len(Kinds))}
	for _, k := range Kinds {
		p, _ := Get(k)
		img := r.NewImage(p.width, p.height)
		img.WritePixels(p.RGBA())
		lib.textures[k] = img
	}
	return lib
}

// Texture returns the texture registered for k.
func (l *Library) Texture(k Kind) (render.Image, error) {
	img, ok := l.textures[k]
	if !ok {
		return nil, fmt.Errorf("no texture for mask kind %s", k)
	}
	return img, nil
}

// Dispose releases all textures.
func (l *Library) Dispose() {
	for k, img := range l.textures {
		img.Dispose()
		delete(l.textures, k)
	}
}
