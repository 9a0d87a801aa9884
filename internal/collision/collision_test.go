package collision

import (
	"math"
	"testing"

	"chosenoffset.com/spritemask/internal/core/geom"
	"chosenoffset.com/spritemask/internal/world/tilegrid"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRoundedBoxDistanceAlongAxis(t *testing.T) {
	half := geom.Point{X: 0.5, Y: 0.5}
	const r = 0.4

	for _, k := range []float64{0.01, 0.25, 1, 3.5} {
		tr := RoundedBoxDistance(half, r, geom.Point{X: half.X + r + k, Y: 0})
		if !near(tr.Distance, k) {
			t.Errorf("k=%v: distance = %v, want %v", k, tr.Distance, k)
		}
		if tr.Normal != (geom.Point{X: 1, Y: 0}) {
			t.Errorf("k=%v: normal = %+v, want (1, 0)", k, tr.Normal)
		}
	}

	tr := RoundedBoxDistance(half, r, geom.Point{X: 0, Y: -(half.Y + r + 0.5)})
	if !near(tr.Distance, 0.5) || tr.Normal != (geom.Point{X: 0, Y: -1}) {
		t.Errorf("Below the box: got %+v", tr)
	}
}

func TestRoundedBoxDistanceInside(t *testing.T) {
	half := geom.Point{X: 1, Y: 0.5}
	points := []geom.Point{
		{X: 0, Y: 0},
		{X: 0.9, Y: 0.1},
		{X: -0.5, Y: -0.49},
		{X: 0.99, Y: -0.2},
	}
	for _, p := range points {
		if tr := RoundedBoxDistance(half, 0.3, p); tr.Distance >= 0 {
			t.Errorf("Point %+v inside the box has distance %v", p, tr.Distance)
		}
	}
}

func TestRoundedBoxDistanceCorner(t *testing.T) {
	half := geom.Point{X: 0.5, Y: 0.5}
	tr := RoundedBoxDistance(half, 0.4, geom.Point{X: -0.8, Y: -0.9})

	// d = (0.3, 0.4), |d| = 0.5
	if !near(tr.Distance, 0.1) {
		t.Errorf("Expected distance 0.1, got %v", tr.Distance)
	}
	if !near(tr.Normal.X, -0.6) || !near(tr.Normal.Y, -0.8) {
		t.Errorf("Expected normal (-0.6, -0.8), got %+v", tr.Normal)
	}

	onCorner := RoundedBoxDistance(half, 0.4, half)
	if !near(onCorner.Distance, -0.4) || onCorner.Normal != (geom.Point{}) {
		t.Errorf("Exactly on the corner: got %+v", onCorner)
	}
}

func TestRoundedBoxDistanceTieGivesZeroNormal(t *testing.T) {
	tr := RoundedBoxDistance(geom.Point{X: 0.5, Y: 0.5}, 0.4, geom.Point{X: 0.2, Y: -0.2})
	if tr.Normal != (geom.Point{}) {
		t.Errorf("Expected zero normal on a tie, got %+v", tr.Normal)
	}
	if tr.Distance >= 0 {
		t.Errorf("Expected negative distance, got %v", tr.Distance)
	}
}

func TestBoxDistance(t *testing.T) {
	half := geom.Point{X: 0.5, Y: 0.5}

	tr := BoxDistance(half, geom.Point{X: -1.5, Y: 0})
	if !near(tr.Distance, 1) || tr.Normal != (geom.Point{X: -1, Y: 0}) {
		t.Errorf("Left of box: got %+v", tr)
	}

	tr = BoxDistance(half, geom.Point{X: 0.1, Y: 0.3})
	if !near(tr.Distance, -0.2) || tr.Normal != (geom.Point{X: 0, Y: 1}) {
		t.Errorf("Inside box: got %+v", tr)
	}

	tr = BoxDistance(half, geom.Point{X: 0.8, Y: 0.9})
	if !near(tr.Distance, 0.5) {
		t.Errorf("Corner region: distance %v, want 0.5", tr.Distance)
	}
}

func TestCircleDistance(t *testing.T) {
	if d := CircleDistance(geom.Point{X: 3, Y: 4}, 2); !near(d, 3) {
		t.Errorf("Expected 3, got %v", d)
	}
	if d := CircleDistance(geom.Point{}, 2); !near(d, -2) {
		t.Errorf("Expected -2, got %v", d)
	}
}

func mustParse(t *testing.T, rows ...string) *tilegrid.Grid {
	t.Helper()
	g, err := tilegrid.Parse(rows)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func TestTryMoveEmptyGrid(t *testing.T) {
	r := NewResolver(mustParse(t, "0000", "0000", "0000", "0000"))

	got := r.TryMove(geom.Point{X: 2, Y: 2}, geom.Point{X: 0.05, Y: 0})
	if !near(got.X, 2.05) || got.Y != 2 {
		t.Errorf("Expected (2.05, 2), got %+v", got)
	}
}

func TestTryMoveCorrectsOutOfTile(t *testing.T) {
	r := NewResolver(mustParse(t, "10", "00"))

	got := r.TryMove(geom.Point{X: 0.9, Y: 0.5}, geom.Point{})
	if !near(got.Y, 0.5) {
		t.Errorf("Expected no vertical correction, got y=%v", got.Y)
	}
	after := r.TileDistance(geom.Coord{X: 0, Y: 0}, got)
	if !near(after.Distance, -r.Slop) {
		t.Errorf("Expected to rest at -slop, got distance %v at %+v", after.Distance, got)
	}

	// Corner approach pushes along the diagonal.
	got = r.TryMove(geom.Point{X: 1.1, Y: 1.1}, geom.Point{})
	if !near(got.X, got.Y) {
		t.Errorf("Expected diagonal push, got %+v", got)
	}
	after = r.TileDistance(geom.Coord{X: 0, Y: 0}, got)
	if !near(after.Distance, -r.Slop) {
		t.Errorf("Expected to rest at -slop, got distance %v", after.Distance)
	}
}

func TestTryMoveRestsAgainstWall(t *testing.T) {
	r := NewResolver(tilegrid.Default())
	pos := geom.Point{X: 2, Y: 2}

	for i := 0; i < 100; i++ {
		pos = r.TryMove(pos, geom.Point{X: -0.05, Y: 0})
	}

	want := 1 + r.Radius - r.Slop
	if !near(pos.X, want) || !near(pos.Y, 2) {
		t.Errorf("Expected to rest at (%v, 2), got %+v", want, pos)
	}
}

func TestTryMoveCompoundsCorrections(t *testing.T) {
	// Solid tiles in visit order: (0, 0), (1, 0), (0, 1).
	r := NewResolver(mustParse(t, "11", "10"))

	got := r.TryMove(geom.Point{X: 1.2, Y: 1.2}, geom.Point{X: -0.1, Y: -0.1})

	// The corner tile pushes along the diagonal first; each wall tile then
	// corrects the already pushed position along its own axis.
	if !near(got.X, 1.395) || !near(got.Y, 1.395) {
		t.Fatalf("Expected (1.395, 1.395), got %+v", got)
	}
	for _, c := range []geom.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}} {
		if d := r.TileDistance(c, got).Distance; !near(d, -r.Slop) {
			t.Errorf("Tile %+v: expected distance %v, got %v", c, -r.Slop, d)
		}
	}
	// The corner tile ends up clear of the mover after the later pushes.
	want := math.Sqrt2*0.395 - r.Radius
	if d := r.TileDistance(geom.Coord{}, got).Distance; !near(d, want) {
		t.Errorf("Corner tile: expected distance %v, got %v", want, d)
	}
}

func TestTryMoveClearPathUnchanged(t *testing.T) {
	r := NewResolver(tilegrid.Default())
	got := r.TryMove(geom.Point{X: 2, Y: 2}, geom.Point{X: 0, Y: 0.05})
	if !near(got.X, 2) || !near(got.Y, 2.05) {
		t.Errorf("Expected (2, 2.05), got %+v", got)
	}
}

func TestFieldDistanceAndGradient(t *testing.T) {
	r := NewResolver(tilegrid.Default())
	if d := r.FieldDistance(geom.Point{X: 2, Y: 2}); !near(d, 0.6) {
		t.Errorf("Expected field distance 0.6, got %v", d)
	}

	single := NewResolver(mustParse(t, "100", "000", "000"))
	g := single.Gradient(geom.Point{X: 2, Y: 0.5}, 0.01)
	if math.Abs(g.X-1) > 1e-6 || math.Abs(g.Y) > 1e-6 {
		t.Errorf("Expected gradient (1, 0), got %+v", g)
	}

	empty := NewResolver(mustParse(t, "00"))
	if d := empty.FieldDistance(geom.Point{}); !math.IsInf(d, 1) {
		t.Errorf("Expected +Inf with no solid tiles, got %v", d)
	}
}

func TestFieldImage(t *testing.T) {
	r := NewResolver(mustParse(t, "10"))
	img := r.FieldImage(4, 1)

	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 1 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	inside := img.RGBAAt(0, 0)
	if inside.B <= inside.R {
		t.Errorf("Inside pixel should be blue, got %+v", inside)
	}
	outside := img.RGBAAt(3, 0)
	if outside.R <= outside.B {
		t.Errorf("Outside pixel should be red, got %+v", outside)
	}
	if inside.A != 255 || outside.A != 255 {
		t.Error("Field image should be opaque")
	}
}
