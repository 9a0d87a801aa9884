package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/spritemask/internal/collision"
	"chosenoffset.com/spritemask/internal/core/geom"
	"chosenoffset.com/spritemask/internal/render"
	"chosenoffset.com/spritemask/internal/simulation"
	"chosenoffset.com/spritemask/internal/world/tilegrid"
)

const (
	moverHalfSize = 0.4
	gradientStep  = 0.01
)

var (
	backgroundColor = color.RGBA{77, 77, 77, 255}
	tileColor       = color.RGBA{255, 255, 255, 255}
	moverColor      = color.RGBA{255, 0, 255, 255}
	probeColor      = color.RGBA{255, 0, 0, 255}
)

// Probe is the distance query under the mouse cursor.
type Probe struct {
	Pos      geom.Point
	Distance float64
	Gradient geom.Point // normalized
}

// CollisionDemo moves a point through a tile grid, stretched over the
// whole window with world y pointing up.
type CollisionDemo struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager

	Grid     *tilegrid.Grid
	Resolver *collision.Resolver
	Mover    simulation.Mover
	Input    simulation.InputState
	Speed    float64

	ShowField bool
	Field     render.Image
	Probe     Probe
}

// NewCollisionDemo places the mover at the configured start.
func NewCollisionDemo(r render.Renderer, input render.InputManager, cfg *simulation.Config, grid *tilegrid.Grid) *CollisionDemo {
	resolver := collision.NewResolver(grid)
	resolver.Radius = cfg.Collision.Radius
	resolver.Slop = cfg.Collision.Slop

	return &CollisionDemo{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Renderer:     r,
		InputMgr:     input,
		Grid:         grid,
		Resolver:     resolver,
		Mover:        simulation.Mover{Pos: geom.Point{X: cfg.Collision.StartX, Y: cfg.Collision.StartY}},
		Speed:        cfg.Collision.Speed,
	}
}

// Update samples input, moves the mover, and refreshes the cursor probe.
func (g *CollisionDemo) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	g.Input.Sample(g.InputMgr)

	if g.InputMgr.IsKeyJustPressed(render.KeyF) {
		g.ShowField = !g.ShowField
	}

	g.Mover.Step(&g.Input, g.Speed, g.Resolver)

	p := g.screenToWorld(g.Input.MouseX, g.Input.MouseY)
	g.Probe = Probe{Pos: p, Distance: g.Resolver.FieldDistance(p)}
	// No solid tiles: the field is +Inf everywhere and has no gradient.
	if !math.IsInf(g.Probe.Distance, 1) {
		g.Probe.Gradient = normalizeOrZero(g.Resolver.Gradient(p, gradientStep))
	}
	return nil
}

// Draw renders the grid, the optional field, the mover and the probe.
func (g *CollisionDemo) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	if g.ShowField {
		g.drawField(screen)
	}
	g.drawGrid(screen)
	g.drawMover(screen)
	g.drawProbe(screen)
}

// Layout tracks the window size so the world always fills it.
func (g *CollisionDemo) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
	}
	return g.ScreenWidth, g.ScreenHeight
}

func (g *CollisionDemo) cellSize() (float64, float64) {
	return float64(g.ScreenWidth) / float64(g.Grid.Width()),
		float64(g.ScreenHeight) / float64(g.Grid.Height())
}

func (g *CollisionDemo) worldToScreen(p geom.Point) (float32, float32) {
	sx, sy := g.cellSize()
	return float32(p.X * sx), float32((float64(g.Grid.Height()) - p.Y) * sy)
}

func (g *CollisionDemo) screenToWorld(x, y int) geom.Point {
	return geom.Point{
		X: float64(x) / float64(g.ScreenWidth) * float64(g.Grid.Width()),
		Y: (1 - float64(y)/float64(g.ScreenHeight)) * float64(g.Grid.Height()),
	}
}

func (g *CollisionDemo) drawGrid(screen render.Image) {
	sx, sy := g.cellSize()
	g.Grid.EachSolid(func(c geom.Coord) {
		x, y := g.worldToScreen(geom.Point{X: float64(c.X), Y: float64(c.Y + 1)})
		g.Renderer.StrokeRect(screen, x, y, float32(sx), float32(sy), 1, tileColor)
	})
}

func (g *CollisionDemo) drawMover(screen render.Image) {
	sx, sy := g.cellSize()
	corner := geom.Point{X: g.Mover.Pos.X - moverHalfSize, Y: g.Mover.Pos.Y + moverHalfSize}
	x, y := g.worldToScreen(corner)
	g.Renderer.FillRect(screen, x, y, float32(2*moverHalfSize*sx), float32(2*moverHalfSize*sy), moverColor)
}

func (g *CollisionDemo) drawProbe(screen render.Image) {
	p := g.Probe
	if !math.IsInf(p.Distance, 1) {
		x0, y0 := g.worldToScreen(p.Pos)
		x1, y1 := g.worldToScreen(p.Pos.Add(p.Gradient.Scale(-p.Distance)))
		g.Renderer.StrokeLine(screen, x0, y0, x1, y1, 1, probeColor)
	}

	g.Renderer.DrawText(screen, fmt.Sprintf("x, y: %2.2f, %2.2f", p.Pos.X, p.Pos.Y), 4, 4)
	g.Renderer.DrawText(screen, fmt.Sprintf("distance %f", p.Distance), 4, 18)
	g.Renderer.DrawText(screen, fmt.Sprintf("gradient %f, %f", p.Gradient.X, p.Gradient.Y), 4, 32)
}

// drawField rebuilds the field texture at half the window size whenever the
// window changes, then stretches it with world y up.
func (g *CollisionDemo) drawField(screen render.Image) {
	w, h := screen.Size()
	fw, fh := w/2, h/2
	if fw < 1 || fh < 1 {
		return
	}
	if g.Field == nil || needsResize(g.Field, fw, fh) {
		if g.Field != nil {
			g.Field.Dispose()
		}
		g.Field = g.Renderer.NewImage(fw, fh)
		g.Field.WritePixels(g.Resolver.FieldImage(fw, fh).Pix)
	}

	geoM := render.NewGeoM()
	geoM.Scale(float64(w)/float64(fw), -float64(h)/float64(fh))
	geoM.Translate(0, float64(h))
	screen.DrawImage(g.Field, &render.DrawImageOptions{GeoM: geoM, Blend: render.BlendCopy})
}

// normalizeOrZero avoids NaN where the field is flat.
func normalizeOrZero(p geom.Point) geom.Point {
	if p.X == 0 && p.Y == 0 {
		return p
	}
	return p.Normalize()
}
