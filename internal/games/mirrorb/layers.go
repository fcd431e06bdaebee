package mirrorb

import (
	"strings"

	platformcore "github.com/vovakirdan/mirrorb/internal/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

// Layer identifies one drawable plane. Layers draw in declaration order.
type Layer int

const (
	LayerTiles Layer = iota
	LayerPieces
	LayerBeams
	LayerSource
	LayerInventory
	LayerSlotHover
	LayerMenu
	LayerMenuHover
	LayerHolding
	LayerHUD
	LayerVersion
	LayerStatus
	layerCount
)

// Renderer is the surface the game publishes to each frame. It never
// reads game state.
type Renderer interface {
	SetTilemap(layer Layer, tiles []core.Tile, columns int)
	SetVisible(layer Layer, visible bool)
	SetPosition(layer Layer, x, y int)
	SetAlpha(layer Layer, alpha float64)
	SetText(layer Layer, text string)
}

type plane struct {
	tiles   []core.Tile
	columns int
	cellW   int // Terminal columns per tile
	x, y    int
	visible bool
	alpha   float64
	text    string
	color   platformcore.Color
}

// Layers is a Renderer that composites onto a platform screen.
type Layers struct {
	planes [layerCount]plane
}

// NewLayers returns a compositor with every layer hidden.
func NewLayers() *Layers {
	l := &Layers{}
	for i := range l.planes {
		l.planes[i] = plane{cellW: 2, alpha: 1, color: platformcore.ColorDefault}
	}
	l.planes[LayerInventory].cellW = slotW
	l.planes[LayerMenu].color = platformcore.ColorWhite
	l.planes[LayerMenuHover].color = platformcore.ColorBrightGreen
	l.planes[LayerSlotHover].color = platformcore.ColorBrightGreen
	l.planes[LayerSource].color = platformcore.ColorBrightCyan
	l.planes[LayerHUD].color = platformcore.ColorBrightWhite
	l.planes[LayerVersion].color = platformcore.ColorGray
	l.planes[LayerStatus].color = platformcore.ColorBrightGreen
	return l
}

func (l *Layers) SetTilemap(layer Layer, tiles []core.Tile, columns int) {
	p := &l.planes[layer]
	p.tiles = append(p.tiles[:0], tiles...)
	p.columns = max(columns, 1)
}

func (l *Layers) SetVisible(layer Layer, visible bool) {
	l.planes[layer].visible = visible
}

func (l *Layers) SetPosition(layer Layer, x, y int) {
	l.planes[layer].x, l.planes[layer].y = x, y
}

func (l *Layers) SetAlpha(layer Layer, alpha float64) {
	l.planes[layer].alpha = platformcore.ClampF(alpha, 0, 1)
}

func (l *Layers) SetText(layer Layer, text string) {
	l.planes[layer].text = text
}

// SetColor sets the colour text layers draw in.
func (l *Layers) SetColor(layer Layer, c platformcore.Color) {
	l.planes[layer].color = c
}

// Visible reports whether a layer is shown.
func (l *Layers) Visible(layer Layer) bool {
	return l.planes[layer].visible
}

// Draw composites every visible layer onto dst.
func (l *Layers) Draw(dst *platformcore.Screen, th Theme) {
	for i := range l.planes {
		p := &l.planes[i]
		if !p.visible || p.alpha <= 0 {
			continue
		}
		if p.text != "" {
			p.drawText(dst)
		}
		if len(p.tiles) > 0 {
			p.drawTiles(dst, th)
		}
	}
}

func (p *plane) shade(c platformcore.Color) platformcore.Color {
	if p.alpha < 0.5 {
		return c.Dim()
	}
	return c
}

func (p *plane) drawText(dst *platformcore.Screen) {
	for i, line := range strings.Split(p.text, "\n") {
		dst.DrawTextWithColor(p.x, p.y+i, line, p.shade(p.color))
	}
}

func (p *plane) drawTiles(dst *platformcore.Screen, th Theme) {
	for i, t := range p.tiles {
		if t == core.Empty {
			continue
		}
		g, ok := th.Glyph(t)
		if !ok {
			continue
		}
		x := p.x + (i%p.columns)*p.cellW
		y := p.y + i/p.columns
		dst.DrawTextWithColor(x, y, g.Text, p.shade(g.Color))
	}
}
