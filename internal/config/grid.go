package config

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Spacing of the generated layout, in world units.
const (
	gridGapX    = 2
	gridGapZ    = 8
	gridPadding = 2
)

// GridConfig generates Count boxes named BOX1..BOXn, laid out in Rows rows
// (one or two) on a non-clickable floor sized to fit them. Boxes are Size
// wide and deep and twice as tall.
type GridConfig struct {
	Count      int     `toml:"count" yaml:"count"`
	Rows       int     `toml:"rows" yaml:"rows"`
	Size       float32 `toml:"size" yaml:"size"`
	Color      string  `toml:"color" yaml:"color"`
	FloorColor string  `toml:"floor_color" yaml:"floor_color"`
}

func (g *GridConfig) validate() error {
	if g.Rows < 1 || g.Rows > 2 {
		return invalid("grid rows %d must be 1 or 2", g.Rows)
	}
	if g.Count < g.Rows {
		return invalid("grid count %d must be at least rows %d", g.Count, g.Rows)
	}
	if g.Size <= 0 {
		return invalid("grid size %g must be positive", g.Size)
	}
	if _, err := ParseColor(g.Color); err != nil {
		return invalid("grid color: %v", err)
	}
	if _, err := ParseColor(g.FloorColor); err != nil {
		return invalid("grid floor color: %v", err)
	}
	return nil
}

// Objects returns the boxes in index order followed by the floor.
func (g *GridConfig) Objects() []ObjectConfig {
	perRow := g.Count / g.Rows
	size := g.Size
	height := size * 2

	width := (size+gridGapX)*float32(perRow) - gridGapX + gridPadding*2
	length := (size+gridGapZ)*float32(g.Rows) - gridGapZ + gridPadding*2

	posY := math32.Floor(height/2) + 0.5
	posX := func(i int) float32 {
		return float32(i%perRow)*(size+gridGapX) - math32.Floor(width/2) + math32.Floor(size/2) + gridPadding
	}
	posZ := func(i int) float32 {
		z := -float32(i/perRow)*(size+gridGapZ) - math32.Floor(length/2) + math32.Floor(size/2) + gridPadding
		if g.Rows > 1 {
			z += size + gridGapZ
		}
		return z
	}

	objs := make([]ObjectConfig, 0, g.Count+1)
	for i := 0; i < g.Count; i++ {
		objs = append(objs, ObjectConfig{
			Name:     fmt.Sprintf("BOX%d", i+1),
			Position: [3]float32{posX(i), posY, posZ(i)},
			Size:     [3]float32{size, height, size},
			Color:    g.Color,
		})
	}

	clickable := false
	objs = append(objs, ObjectConfig{
		Name:      "floor",
		Size:      [3]float32{width, 1, length},
		Color:     g.FloorColor,
		Clickable: &clickable,
	})
	return objs
}
