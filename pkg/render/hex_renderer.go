// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-space4x/internal/utils"
	"go-space4x/pkg/hexmap"
)

// Ship is the on-screen state of a spaceship.
type Ship struct {
	X, Y   float64
	Angle  float64 // degrees, as produced by system.Heading
	Radius float64
}

// Star is a star system marker. Richness is amount/max in [0,1].
type Star struct {
	X, Y     float64
	Richness float64
}

// Frame is everything drawn on top of the grid in one frame.
type Frame struct {
	CamX, CamY       float64
	Ship             Ship
	Stars            []Star
	StarRadius       float64
	CursorX, CursorY float64
	CursorRadius     float64
	Status           []string
}

type HexRenderer struct {
	grid         *hexmap.Grid
	palette      Palette
	screenWidth  int
	screenHeight int
	whiteImg     *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	shipAngle    float64
}

func NewHexRenderer(grid *hexmap.Grid, palette Palette, screenWidth, screenHeight int) *HexRenderer {
	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)

	return &HexRenderer{
		grid:         grid,
		palette:      palette,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		whiteImg:     whiteImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     basicfont.Face7x13,
	}
}

func (r *HexRenderer) Draw(screen *ebiten.Image, f Frame) {
	screen.Fill(r.palette.Background)

	radius := r.grid.Layout.Radius()
	r.grid.Each(func(tile *hexmap.Tile) bool {
		x, y := tile.Center()
		x -= f.CamX
		y -= f.CamY
		if !r.visible(x, y, radius) {
			return true
		}
		fill := r.palette.Tile
		if tile.IsHighlighted() {
			fill = r.palette.Highlight
		}
		path := hexPath(x, y, radius)
		r.fillHex(screen, &path, fill)
		r.strokeHex(screen, &path, r.palette.TileStroke)
		return true
	})

	for _, s := range f.Stars {
		r.drawStar(screen, s, f)
	}
	r.drawShip(screen, f)

	vector.StrokeCircle(screen, float32(f.CursorX), float32(f.CursorY), float32(f.CursorRadius),
		r.palette.StrokeWidth, r.palette.Cursor, true)

	for i, line := range f.Status {
		text.Draw(screen, line, r.fontFace, 10, 20+i*16, r.palette.Text)
	}
}

func (r *HexRenderer) visible(x, y, margin float64) bool {
	return x > -margin && y > -margin &&
		x < float64(r.screenWidth)+margin && y < float64(r.screenHeight)+margin
}

// hexPath builds a pointy-top hexagon around (x, y).
func hexPath(x, y, radius float64) vector.Path {
	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := x + radius*math.Cos(angle)
		py := y + radius*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) fillHex(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) strokeHex(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.palette.StrokeWidth,
	})
	paintVertices(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawStar(screen *ebiten.Image, s Star, f Frame) {
	x, y := s.X-f.CamX, s.Y-f.CamY
	if !r.visible(x, y, f.StarRadius) {
		return
	}
	c := MixColor(r.palette.Depleted, r.palette.Star, s.Richness)
	radius := f.StarRadius * (0.5 + 0.5*s.Richness)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), c, true)
}

// drawShip draws a triangle pointing along the ship heading. The drawn
// angle eases towards the real one so turns look smooth.
func (r *HexRenderer) drawShip(screen *ebiten.Image, f Frame) {
	r.shipAngle = utils.LerpAngle(r.shipAngle, f.Ship.Angle, 0.25)

	x, y := f.Ship.X-f.CamX, f.Ship.Y-f.CamY
	rad := r.shipAngle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	rotate := func(px, py float64) (float32, float32) {
		return float32(x + px*cos - py*sin), float32(y + px*sin + py*cos)
	}

	// nose points along +y at angle 0 in screen space, matching Heading
	size := f.Ship.Radius
	path := vector.Path{}
	path.MoveTo(rotate(0, size))
	path.LineTo(rotate(-size*0.6, -size*0.7))
	path.LineTo(rotate(0, -size*0.35))
	path.LineTo(rotate(size*0.6, -size*0.7))
	path.Close()

	r.fillHex(screen, &path, r.palette.Ship)
	r.strokeHex(screen, &path, DarkenColor(r.palette.Ship))
}
