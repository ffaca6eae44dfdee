// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Palette holds every colour the map renderer needs.
type Palette struct {
	Background  color.RGBA
	Tile        color.RGBA
	TileStroke  color.RGBA
	Highlight   color.RGBA
	Star        color.RGBA
	Depleted    color.RGBA
	Ship        color.RGBA
	Cursor      color.RGBA
	Text        color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// MixColor blends a towards b, t in [0,1].
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 { return uint8(float64(x)*(1-t) + float64(y)*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
