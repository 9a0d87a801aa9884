package spritegen

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/spritemask/internal/arena"
	"chosenoffset.com/spritemask/internal/sprite"
)

func pixelAt(frame []byte, width, x, y int) color.RGBA {
	i := (y*width + x) * sprite.BytesPerPixel
	return color.RGBA{frame[i], frame[i+1], frame[i+2], frame[i+3]}
}

func TestDiamondLayout(t *testing.T) {
	sheet, err := Diamond(DefaultFrames, DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("Diamond: %v", err)
	}
	if sheet.FrameCount != 42 || sheet.Size() != 42*9*9*4 {
		t.Fatalf("Unexpected sheet %d frames, %d bytes", sheet.FrameCount, sheet.Size())
	}

	for i := 0; i < sheet.FrameCount; i++ {
		frame, _ := sheet.Frame(i)
		if c := pixelAt(frame, 9, 4, 4); c.A != 255 {
			t.Errorf("Frame %d: center should be opaque, got %v", i, c)
		}
		if c := pixelAt(frame, 9, 0, 0); c.A != 0 {
			t.Errorf("Frame %d: corner should be transparent, got %v", i, c)
		}
	}
}

func TestDiamondPulses(t *testing.T) {
	sheet, _ := Diamond(DefaultFrames, DefaultWidth, DefaultHeight)
	first, _ := sheet.Frame(0)
	middle, _ := sheet.Frame(21)

	if c := pixelAt(first, 9, 4, 1); c.A != 0 {
		t.Errorf("First frame should be small, got %v at (4, 1)", c)
	}
	if c := pixelAt(middle, 9, 4, 1); c.A != 255 {
		t.Errorf("Middle frame should be large, got %v at (4, 1)", c)
	}
	if bytes.Equal(first, middle) {
		t.Error("Frames should differ")
	}
}

func TestDiamondRejectsBadLayout(t *testing.T) {
	if _, err := Diamond(0, 9, 9); err == nil {
		t.Error("Expected error for zero frames")
	}
	if _, err := Diamond(1, 9, -1); err == nil {
		t.Error("Expected error for negative height")
	}
}

func TestSaveRawLoadsBack(t *testing.T) {
	sheet, _ := Diamond(4, 5, 5)
	path := filepath.Join(t.TempDir(), "diamond")
	if err := SaveRaw(path, sheet); err != nil {
		t.Fatalf("SaveRaw: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != int64(sheet.Size()) {
		t.Errorf("Expected %d bytes on disk, got %d", sheet.Size(), info.Size())
	}

	loaded, err := sprite.LoadSheet(path, 5, 5, 4, arena.New(arena.DefaultSize))
	if err != nil {
		t.Fatalf("LoadSheet: %v", err)
	}
	if loaded.Missing {
		t.Fatal("Sheet should not be missing")
	}
	for i := 0; i < 4; i++ {
		want, _ := sheet.Frame(i)
		got, _ := loaded.Frame(i)
		if !bytes.Equal(want, got) {
			t.Errorf("Frame %d differs after reload", i)
		}
	}
}

func TestContactSheet(t *testing.T) {
	sheet, _ := Diamond(DefaultFrames, DefaultWidth, DefaultHeight)

	img, err := ContactSheet(sheet, 4)
	if err != nil {
		t.Fatalf("ContactSheet: %v", err)
	}
	// 42 frames fit a 7x6 grid.
	if img.Rect.Dx() != 7*9*4 || img.Rect.Dy() != 6*9*4 {
		t.Fatalf("Unexpected preview size %v", img.Rect)
	}

	frame, _ := sheet.Frame(8) // column 1, row 1
	want := pixelAt(frame, 9, 4, 4)
	for _, p := range [][2]int{{(9 + 4) * 4, (9 + 4) * 4}, {(9+4)*4 + 3, (9+4)*4 + 3}} {
		if got := img.RGBAAt(p[0], p[1]); got != want {
			t.Errorf("Pixel %v: expected %v, got %v", p, want, got)
		}
	}

	if _, err := ContactSheet(sheet, 0); err == nil {
		t.Error("Expected error for zero scale")
	}
}

func TestSaveContactSheet(t *testing.T) {
	sheet, _ := Diamond(3, 9, 9)
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := SaveContactSheet(path, sheet, 2); err != nil {
		t.Fatalf("SaveContactSheet: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// 3 frames fit a 2x2 grid.
	if b := img.Bounds(); b.Dx() != 2*9*2 || b.Dy() != 2*9*2 {
		t.Errorf("Unexpected PNG size %v", b)
	}
}

func TestDarken(t *testing.T) {
	got := Darken(color.RGBA{200, 100, 50, 255}, 0.5)
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("Unexpected darkened color %v", got)
	}
}
