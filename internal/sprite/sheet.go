// Package sprite loads multi-frame raw sprite sheets and draws them with the
// two-pass alpha mask technique.
package sprite

import (
	"errors"
	"fmt"
	"log"
	"os"

	"chosenoffset.com/spritemask/internal/arena"
)

// BytesPerPixel is the size of one RGBA pixel.
const BytesPerPixel = 4

// ErrCorruptResource is returned when sprite data is shorter than its
// declared frame layout.
var ErrCorruptResource = errors.New("corrupt sprite resource")

// Sheet is a headerless run of RGBA frames laid out back to back.
type Sheet struct {
	FrameWidth  int
	FrameHeight int
	FrameCount  int

	// Missing is set when the backing file could not be opened and the
	// sheet was left zero-filled.
	Missing bool

	pix []byte
}

// Stride returns the byte size of one frame.
func (s *Sheet) Stride() int {
	return s.FrameWidth * s.FrameHeight * BytesPerPixel
}

// Size returns the byte size of the whole sheet.
func (s *Sheet) Size() int {
	return s.Stride() * s.FrameCount
}

// NewSheet wraps pix as a sheet of frameCount frames.
func NewSheet(pix []byte, frameWidth, frameHeight, frameCount int) (*Sheet, error) {
	s := &Sheet{FrameWidth: frameWidth, FrameHeight: frameHeight, FrameCount: frameCount}
	if err := s.validateLayout(); err != nil {
		return nil, err
	}
	if len(pix) < s.Size() {
		return nil, fmt.Errorf("%w: have %d bytes, need %d for %d frames of %dx%d",
			ErrCorruptResource, len(pix), s.Size(), frameCount, frameWidth, frameHeight)
	}
	s.pix = pix[:s.Size()]
	return s, nil
}

// LoadSheet reads a raw sprite file into a buffer carved from mem.
//
// A file that cannot be opened is logged and the sheet is returned
// zero-filled with Missing set; drawing continues with blank frames. A file
// that is too short fails with ErrCorruptResource, and an exhausted arena
// fails with arena.ErrExhausted.
func LoadSheet(path string, frameWidth, frameHeight, frameCount int, mem *arena.Arena) (*Sheet, error) {
	s := &Sheet{FrameWidth: frameWidth, FrameHeight: frameHeight, FrameCount: frameCount}
	if err := s.validateLayout(); err != nil {
		return nil, err
	}

	buf, err := mem.Alloc(s.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to allocate sprite sheet %s: %w", path, err)
	}
	s.pix = buf

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Failed to open sprite file %q: %v", path, err)
		s.Missing = true
		return s, nil
	}

	if len(data) < s.Size() {
		return nil, fmt.Errorf("%w: %s has %d bytes, need %d for %d frames of %dx%d",
			ErrCorruptResource, path, len(data), s.Size(), frameCount, frameWidth, frameHeight)
	}
	if len(data) > s.Size() {
		log.Printf("Warning: Sprite file %q has %d trailing bytes", path, len(data)-s.Size())
	}

	copy(s.pix, data)
	return s, nil
}

// Frame returns the pixels of frame i. The slice aliases the sheet.
func (s *Sheet) Frame(i int) ([]byte, error) {
	if i < 0 || i >= s.FrameCount {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", i, s.FrameCount)
	}
	start := i * s.Stride()
	end := start + s.Stride()
	if end > len(s.pix) {
		return nil, fmt.Errorf("%w: frame %d ends at byte %d, sheet has %d", ErrCorruptResource, i, end, len(s.pix))
	}
	return s.pix[start:end:end], nil
}

func (s *Sheet) validateLayout() error {
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		return fmt.Errorf("invalid frame dimensions: %dx%d", s.FrameWidth, s.FrameHeight)
	}
	if s.FrameCount <= 0 {
		return fmt.Errorf("invalid frame count: %d", s.FrameCount)
	}
	return nil
}
