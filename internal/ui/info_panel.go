// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-space4x/internal/component"
	"go-space4x/internal/config"
)

const (
	panelHeight    = 90
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 220
)

// InfoPanel slides up from the bottom of the screen and describes the star
// system under the cursor.
type InfoPanel struct {
	IsVisible    bool
	target       *component.ResourceNode
	fontFace     font.Face
	screenWidth  int
	screenHeight int
	currentY     float64
	targetY      float64
}

func NewInfoPanel(face font.Face, screenWidth, screenHeight int) *InfoPanel {
	return &InfoPanel{
		fontFace:     face,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		currentY:     float64(screenHeight),
		targetY:      float64(screenHeight),
	}
}

func (p *InfoPanel) SetTarget(node *component.ResourceNode) {
	p.target = node
	p.IsVisible = true
	p.targetY = float64(p.screenHeight - panelHeight)
}

func (p *InfoPanel) Hide() {
	p.targetY = float64(p.screenHeight)
}

func (p *InfoPanel) Target() *component.ResourceNode {
	return p.target
}

// Update animates the panel towards its target height.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}

	if p.currentY >= float64(p.screenHeight) {
		p.IsVisible = false
		p.target = nil
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, cargo *component.Cargo) {
	if !p.IsVisible || p.target == nil {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		p.screenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	x := panelRect.Min.X + 15
	y := panelRect.Min.Y + 25
	node := p.target

	title := fmt.Sprintf("Star system %s", node.Tile.Offset())
	if node.Depleted() {
		title += " (depleted)"
	}
	text.Draw(screen, title, p.fontFace, x, y, config.TextLightColor)
	y += lineHeight

	text.Draw(screen, fmt.Sprintf("Resource: %s", node.Kind), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Amount: %.0f / %.0f", node.Amount, node.MaxAmount), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	y += lineHeight

	if cargo != nil {
		hold := fmt.Sprintf("Cargo: %.0f", cargo.Amount)
		if cargo.Capacity > 0 {
			hold = fmt.Sprintf("Cargo: %.0f / %.0f", cargo.Amount, cargo.Capacity)
		}
		text.Draw(screen, hold, p.fontFace, x, y, config.TextLightColor)
	}
}
