// Package pyramid builds and inverts the N-level wavelet pyramid: repeated
// Haar decomposition with an optional post-Haar twiddle pass, producing a
// coarsest-resolution "low" plane plus one triplet grid per level.
package pyramid

import (
	"errors"

	"github.com/apt1002/fvq-go/internal/haar"
	"github.com/apt1002/fvq-go/internal/quad"
	"github.com/apt1002/fvq-go/internal/twiddle"
)

// ErrDimensionMismatch is returned when a pixel grid's dimensions are not a
// multiple of 2^order.
var ErrDimensionMismatch = errors.New("pyramid: dimensions must be a multiple of 2^order")

// Triplet holds the three high-frequency Haar components produced at one
// level of the pyramid: Vertical (LH), Horizontal (HL), Cross (HH).
type Triplet struct {
	V, H, C float32
}

// Position selects the quadtree rooted at one tile of a Pyramid. Y and X
// are measured in units of 1<<(order-level) pixels.
type Position struct {
	Level int
	Y, X  int
}

// Children returns the four child positions one level deeper.
func (pos Position) Children() quad.Quad[Position] {
	return quad.NewQuad(
		Position{pos.Level + 1, 2 * pos.Y, 2 * pos.X},
		Position{pos.Level + 1, 2 * pos.Y, 2*pos.X + 1},
		Position{pos.Level + 1, 2*pos.Y + 1, 2 * pos.X},
		Position{pos.Level + 1, 2*pos.Y + 1, 2*pos.X + 1},
	)
}

// Pyramid is a bundle of a coarsest-resolution low-frequency plane and an
// ordered (coarsest-first) list of per-level triplet grids.
type Pyramid struct {
	Low   [][]float32
	Highs [][][]Triplet
}

// FromPixels decomposes pixels into a Pyramid with the given order (number
// of wavelet levels). If smooth, the twiddle decorrelation pass runs after
// every Haar step. pixels' dimensions must be a multiple of 1<<order.
func FromPixels(order int, smooth bool, pixels [][]float32) (Pyramid, error) {
	if len(pixels) == 0 || len(pixels)%(1<<order) != 0 || len(pixels[0])%(1<<order) != 0 {
		return Pyramid{}, ErrDimensionMismatch
	}
	low := pixels
	highs := make([][][]Triplet, order)
	for i := 0; i < order; i++ {
		tiles := toHaarGrid(low)
		if smooth {
			tiles = twiddle.Grid(tiles, false)
		}
		highs[order-1-i] = toHigh(tiles)
		low = toLow(tiles)
	}
	return Pyramid{Low: low, Highs: highs}, nil
}

// ToPixels inverts FromPixels.
func (p Pyramid) ToPixels(smooth bool) [][]float32 {
	low := p.Low
	for level := 0; level < p.Order(); level++ {
		tiles := fromLowHigh(low, p.Highs[level])
		if smooth {
			tiles = twiddle.Grid(tiles, true)
		}
		low = fromHaarGrid(tiles)
	}
	return low
}

// Montage renders the pyramid as one image for visualization: at each
// level the low plane and triplet grid (offset by +0.5 so detail is
// centered on mid-grey) are laid out as a 2x2 grid of quadrants, without
// applying the inverse Haar transform.
func (p Pyramid) Montage() [][]float32 {
	low := p.Low
	for level := 0; level < p.Order(); level++ {
		high := p.Highs[level]
		m, n := len(low), len(low[0])
		out := make([][]float32, 2*m)
		for y := range out {
			out[y] = make([]float32, 2*n)
		}
		for y := 0; y < m; y++ {
			for x := 0; x < n; x++ {
				out[y][x] = low[y][x]
				out[y][x+n] = high[y][x].V + 0.5
				out[y+m][x] = high[y][x].H + 0.5
				out[y+m][x+n] = high[y][x].C + 0.5
			}
		}
		low = out
	}
	return low
}

// Order returns the number of wavelet levels.
func (p Pyramid) Order() int { return len(p.Highs) }

// Size returns the dimensions of the low plane, in units of 1<<Order()
// pixels.
func (p Pyramid) Size() (h, w int) { return len(p.Low), len(p.Low[0]) }

// Get materializes the subtree rooted at pos.
func (p Pyramid) Get(pos Position) quad.Tree[Triplet] {
	if pos.Level >= p.Order() {
		return quad.Leaf[Triplet]()
	}
	payload := p.Highs[pos.Level][pos.Y][pos.X]
	children := quad.MapQuad(pos.Children(), p.Get)
	return quad.Branch(payload, children)
}

// Set writes tree into the tile at pos, blanking any component absent from
// tree.
func (p Pyramid) Set(pos Position, tree quad.Tree[Triplet]) {
	if pos.Level >= p.Order() {
		return
	}
	children := pos.Children()
	if tree.IsLeaf() {
		p.Highs[pos.Level][pos.Y][pos.X] = Triplet{}
		children.Each(func(_, _ bool, child Position) { p.Set(child, quad.Leaf[Triplet]()) })
		return
	}
	p.Highs[pos.Level][pos.Y][pos.X] = tree.Payload()
	treeChildren := tree.Children()
	children.Each(func(row, col bool, child Position) {
		p.Set(child, treeChildren.At(row, col))
	})
}

// ----------------------------------------------------------------------------
// Pixel-grid <-> Haar-grid conversions.

func toHaarGrid(pixels [][]float32) [][]haar.Haar {
	m, n := len(pixels)/2, len(pixels[0])/2
	out := make([][]haar.Haar, m)
	for y := 0; y < m; y++ {
		out[y] = make([]haar.Haar, n)
		for x := 0; x < n; x++ {
			a := pixels[2*y][2*x]
			b := pixels[2*y][2*x+1]
			c := pixels[2*y+1][2*x]
			d := pixels[2*y+1][2*x+1]
			out[y][x] = haar.New(a, b, c, d).Transform()
		}
	}
	return out
}

func fromHaarGrid(tiles [][]haar.Haar) [][]float32 {
	m, n := len(tiles), len(tiles[0])
	out := make([][]float32, 2*m)
	for y := range out {
		out[y] = make([]float32, 2*n)
	}
	for y := 0; y < m; y++ {
		for x := 0; x < n; x++ {
			t := tiles[y][x].Transform()
			out[2*y][2*x] = t.At(false, false)
			out[2*y][2*x+1] = t.At(false, true)
			out[2*y+1][2*x] = t.At(true, false)
			out[2*y+1][2*x+1] = t.At(true, true)
		}
	}
	return out
}

func toLow(tiles [][]haar.Haar) [][]float32 {
	out := make([][]float32, len(tiles))
	for y, row := range tiles {
		out[y] = make([]float32, len(row))
		for x, t := range row {
			out[y][x] = t.At(false, false)
		}
	}
	return out
}

func toHigh(tiles [][]haar.Haar) [][]Triplet {
	out := make([][]Triplet, len(tiles))
	for y, row := range tiles {
		out[y] = make([]Triplet, len(row))
		for x, t := range row {
			out[y][x] = Triplet{V: t.At(false, true), H: t.At(true, false), C: t.At(true, true)}
		}
	}
	return out
}

func fromLowHigh(low [][]float32, high [][]Triplet) [][]haar.Haar {
	out := make([][]haar.Haar, len(low))
	for y := range low {
		out[y] = make([]haar.Haar, len(low[y]))
		for x := range low[y] {
			t := high[y][x]
			out[y][x] = haar.New(low[y][x], t.V, t.H, t.C)
		}
	}
	return out
}
