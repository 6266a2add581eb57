// Package haar implements the one-step 2x2 orthonormal Haar transform used
// at every level of the wavelet pyramid.
package haar

import "github.com/apt1002/fvq-go/internal/quad"

// Haar wraps a 2x2 tile of float32, indexed (row, col): (false,false) is
// LL, (false,true) is LH, (true,false) is HL, (true,true) is HH.
type Haar struct {
	quad.Quad[float32]
}

// New builds a Haar from its four components in row-major order.
func New(a, b, c, d float32) Haar {
	return Haar{quad.NewQuad(a, b, c, d)}
}

// Transform applies the orthonormal Haar step. It is its own inverse: for
// any h, h.Transform().Transform() == h to within floating-point rounding.
func (h Haar) Transform() Haar {
	a := 0.5 * h.At(false, false)
	b := 0.5 * h.At(false, true)
	c := 0.5 * h.At(true, false)
	d := 0.5 * h.At(true, true)
	return New(
		(a+b)+(c+d), (a-b)+(c-d),
		(a+b)-(c+d), (a-b)-(c-d),
	)
}

// Transpose exchanges the row and column indices.
func (h Haar) Transpose() Haar {
	return Haar{h.Quad.Transpose()}
}

// Set returns a copy of h with the cell at (row, col) replaced.
func (h Haar) Set(row, col bool, v float32) Haar {
	return Haar{h.Quad.Set(row, col, v)}
}
