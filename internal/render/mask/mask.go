// Package mask holds the procedural 1-bit alpha patterns used by the mask
// pass of the sprite compositor.
package mask

import "fmt"

// Kind identifies a mask pattern.
type Kind int

const (
	Solid Kind = iota
	HLine
	VLine
	DiagLine
	Checkerboard
	Point

	NumKinds
)

// Kinds lists every pattern kind in declaration order.
var Kinds = []Kind{Solid, HLine, VLine, DiagLine, Checkerboard, Point}

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Solid:
		return "solid"
	case HLine:
		return "hline"
	case VLine:
		return "vline"
	case DiagLine:
		return "diag"
	case Checkerboard:
		return "check"
	case Point:
		return "point"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown mask kind: %q", name)
}

// Next returns the kind after k, wrapping back to Solid.
func (k Kind) Next() Kind {
	return (k + 1) % NumKinds
}

// UVScale returns the factor applied to a quad's pixel extents to get the
// mask texture coordinates, so each pattern tiles at one texel per pixel.
func UVScale(k Kind) float32 {
	switch k {
	case Solid:
		return 1.0
	case DiagLine:
		return 0.25
	default:
		return 0.5
	}
}

// Pattern is an immutable grid of 0/255 intensities sampled with wrap.
type Pattern struct {
	kind   Kind
	width  int
	height int
	data   []byte
}

const on = 0xff

var patterns = map[Kind]*Pattern{
	Solid:        {kind: Solid, width: 1, height: 1, data: []byte{on}},
	HLine:        {kind: HLine, width: 1, height: 2, data: []byte{on, 0}},
	VLine:        {kind: VLine, width: 2, height: 1, data: []byte{on, 0}},
	Checkerboard: {kind: Checkerboard, width: 2, height: 2, data: []byte{on, 0, 0, on}},
	Point:        {kind: Point, width: 2, height: 2, data: []byte{on, 0, 0, 0}},
	DiagLine: {kind: DiagLine, width: 4, height: 4, data: []byte{
		0, 0, on, 0,
		0, 0, 0, on,
		on, 0, 0, 0,
		0, on, 0, 0,
	}},
}

// Get returns the built-in pattern for k.
func Get(k Kind) (*Pattern, bool) {
	p, ok := patterns[k]
	return p, ok
}

// Kind returns the pattern's kind.
func (p *Pattern) Kind() Kind { return p.kind }

// Size returns the pattern dimensions in texels.
func (p *Pattern) Size() (width, height int) { return p.width, p.height }

// At samples the pattern at (x, y), wrapping both axes. Negative
// coordinates wrap as well.
func (p *Pattern) At(x, y int) byte {
	x %= p.width
	if x < 0 {
		x += p.width
	}
	y %= p.height
	if y < 0 {
		y += p.height
	}
	return p.data[y*p.width+x]
}

// RGBA expands the pattern into premultiplied white RGBA pixels whose
// alpha is the pattern intensity.
func (p *Pattern) RGBA() []byte {
	pix := make([]byte, 0, len(p.data)*4)
	for _, a := range p.data {
		pix = append(pix, a, a, a, a)
	}
	return pix
}
