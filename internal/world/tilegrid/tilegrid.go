// Package tilegrid holds the static collision layout the mover walks in.
package tilegrid

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/spritemask/internal/core/geom"
)

const (
	// SolidCell marks a blocking tile in a row string.
	SolidCell = '1'
	// EmptyCell marks an open tile in a row string.
	EmptyCell = '0'
)

// defaultRows is the 8x8 room the collision demo starts in.
var defaultRows = []string{
	"11111111",
	"10000001",
	"10011001",
	"10011001",
	"10001001",
	"10000001",
	"10000001",
	"11111111",
}

// MapData is the JSON form of a tile grid.
type MapData struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"` // Row y is Rows[y], one byte per cell
}

// Grid is an immutable grid of solid and empty cells. Cell (x, y) covers
// the unit square [x, x+1) x [y, y+1).
type Grid struct {
	name   string
	width  int
	height int
	solid  []bool
}

// Default returns the built-in 8x8 room.
func Default() *Grid {
	g, err := Parse(defaultRows)
	if err != nil {
		panic(err)
	}
	g.name = "default"
	return g
}

// Parse builds a grid from rows of SolidCell/EmptyCell characters.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", rowWidth(rows), len(rows))
	}

	g := &Grid{
		width:  len(rows[0]),
		height: len(rows),
		solid:  make([]bool, len(rows[0])*len(rows)),
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("rows width mismatch at row %d: expected %d, got %d", y, g.width, len(row))
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case SolidCell:
				g.solid[y*g.width+x] = true
			case EmptyCell:
			default:
				return nil, fmt.Errorf("invalid cell %q at (%d, %d)", row[x], x, y)
			}
		}
	}
	return g, nil
}

// Load reads a grid from a JSON map file.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}

	g, err := Parse(mapData.Rows)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}
	g.name = mapData.Name
	return g, nil
}

// validateMapData checks the declared dimensions against the rows.
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if len(data.Rows) != data.Height {
		return fmt.Errorf("rows array height mismatch: expected %d, got %d", data.Height, len(data.Rows))
	}

	for y, row := range data.Rows {
		if len(row) != data.Width {
			return fmt.Errorf("rows array width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
	}

	return nil
}

func rowWidth(rows []string) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}

// Name returns the map name.
func (g *Grid) Name() string { return g.name }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Solid reports whether cell (x, y) blocks. Cells outside the grid are empty.
func (g *Grid) Solid(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.solid[y*g.width+x]
}

// EachSolid calls fn for every solid cell in row-major order.
func (g *Grid) EachSolid(fn func(c geom.Coord)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.solid[y*g.width+x] {
				fn(geom.Coord{X: x, Y: y})
			}
		}
	}
}
