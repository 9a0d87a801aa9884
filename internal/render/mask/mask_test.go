package mask

import (
	"testing"

	"chosenoffset.com/spritemask/internal/render/rendertest"
)

func TestUVScale(t *testing.T) {
	want := map[Kind]float32{
		Solid:        1.0,
		HLine:        0.5,
		VLine:        0.5,
		DiagLine:     0.25,
		Checkerboard: 0.5,
		Point:        0.5,
	}
	for _, k := range Kinds {
		if got := UVScale(k); got != want[k] {
			t.Errorf("UVScale(%s) = %v, want %v", k, got, want[k])
		}
	}
}

func TestPatternWrapSampling(t *testing.T) {
	check, _ := Get(Checkerboard)
	if check.At(0, 0) != 0xff || check.At(1, 0) != 0 || check.At(0, 1) != 0 || check.At(1, 1) != 0xff {
		t.Fatal("Checkerboard pattern data is wrong")
	}
	if check.At(2, 2) != check.At(0, 0) {
		t.Error("Expected positive coordinates to wrap")
	}
	if check.At(-1, 0) != check.At(1, 0) {
		t.Error("Expected negative coordinates to wrap")
	}

	hline, _ := Get(HLine)
	for x := 0; x < 5; x++ {
		if hline.At(x, 0) != 0xff || hline.At(x, 1) != 0 {
			t.Errorf("HLine column %d: expected lit row 0 and dark row 1", x)
		}
	}

	vline, _ := Get(VLine)
	for y := 0; y < 5; y++ {
		if vline.At(0, y) != 0xff || vline.At(1, y) != 0 {
			t.Errorf("VLine row %d: expected lit column 0 and dark column 1", y)
		}
	}
}

func TestDiagonalHasOneTexelPerRowAndColumn(t *testing.T) {
	diag, _ := Get(DiagLine)
	w, h := diag.Size()
	if w != 4 || h != 4 {
		t.Fatalf("Expected 4x4 diagonal, got %dx%d", w, h)
	}
	for y := 0; y < h; y++ {
		lit := 0
		for x := 0; x < w; x++ {
			if diag.At(x, y) == 0xff {
				lit++
			}
		}
		if lit != 1 {
			t.Errorf("Row %d has %d lit texels, want 1", y, lit)
		}
	}
}

func TestPatternDimensions(t *testing.T) {
	for _, k := range Kinds {
		p, ok := Get(k)
		if !ok {
			t.Fatalf("Missing pattern for %s", k)
		}
		w, h := p.Size()
		for _, d := range []int{w, h} {
			if d != 1 && d != 2 && d != 4 {
				t.Errorf("%s has dimension %d", k, d)
			}
		}
		if len(p.RGBA()) != w*h*4 {
			t.Errorf("%s RGBA length %d, want %d", k, len(p.RGBA()), w*h*4)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("stripes"); err == nil {
		t.Error("Expected error for unknown kind")
	}
	if Point.Next() != Solid {
		t.Error("Expected Next to wrap to Solid")
	}
}

func TestLibraryUploadsEveryPattern(t *testing.T) {
	r := &rendertest.Renderer{}
	lib := NewLibrary(r)

	if len(r.Created) != len(Kinds) {
		t.Fatalf("Expected %d textures, got %d", len(Kinds), len(r.Created))
	}
	for _, k := range Kinds {
		tex, err := lib.Texture(k)
		if err != nil {
			t.Fatalf("Texture(%s): %v", k, err)
		}
		p, _ := Get(k)
		img := tex.(*rendertest.Image)
		if string(img.Pixels) != string(p.RGBA()) {
			t.Errorf("%s texture pixels do not match pattern", k)
		}
	}

	lib.Dispose()
	if _, err := lib.Texture(Solid); err == nil {
		t.Error("Expected error after Dispose")
	}
	for _, img := range r.Created {
		if !img.Disposed {
			t.Error("Expected texture to be disposed")
		}
	}
}
