// Package bcc implements the shifted body-centred-cubic lattice quantizer:
// ShiftedBCC points, the arrow halving step, residual chains, and the
// order-4 symmetry group used to canonicalize them for the statistics
// harness.
package bcc

import "math"

// ShiftedBCC is a point of the body-centred-cubic lattice shifted so that
// (±1, 0, 0.5) and (0, ±1, -0.5) — the four points nearest the origin —
// are members. v, h and c are stored relative to that shift (v-1, h, c-0.5)
// so that a point is valid iff all three stored coordinates share parity.
type ShiftedBCC struct {
	v, h, c int16
}

func newInner(v, h, c int16) ShiftedBCC {
	if v&1 != c&1 || h&1 != c&1 {
		panic("bcc: not a quantisation point")
	}
	return ShiftedBCC{v, h, c}
}

// New constructs a ShiftedBCC from its 3D coordinates. It panics if
// (v, h, c) is not a lattice point.
func New(v, h, c float32) ShiftedBCC {
	return newInner(int16(v-1.0), int16(h-0.0), int16(c-0.5))
}

func (p ShiftedBCC) V() float32 { return float32(p.v) + 1.0 }
func (p ShiftedBCC) H() float32 { return float32(p.h) + 0.0 }
func (p ShiftedBCC) C() float32 { return float32(p.c) + 0.5 }

// VHC returns the coordinates of p.
func (p ShiftedBCC) VHC() (float32, float32, float32) { return p.V(), p.H(), p.C() }

// round2 rounds to the nearest even integer.
func round2(x float32) float32 { return 2.0 * float32(math.Round(float64(x*0.5))) }

func sqnorm(v, h, c float32) float32 { return v*v + h*h + c*c }

// Quantize returns the nearest ShiftedBCC to (v, h, c) and the squared L2
// norm of the rounding error.
func Quantize(v, h, c float32) (ShiftedBCC, float32) {
	v1 := round2(v-1.0) + 1.0
	h1 := round2(h-0.0) + 0.0
	c1 := round2(c-0.5) + 0.5
	norm1 := sqnorm(v-v1, h-h1, c-c1)

	v2 := round2(v+0.0) - 0.0
	h2 := round2(h+1.0) - 1.0
	c2 := round2(c+0.5) - 0.5
	norm2 := sqnorm(v-v2, h-h2, c-c2)

	if norm1 < norm2 {
		return New(v1, h1, c1), norm1
	}
	return New(v2, h2, c2), norm2
}

// residuals lists the 8 possible values of ½A - B for A -> B. Index order
// matches deltas and syndromes below.
var residuals = [8][3]float32{
	{0.0, -0.5, -0.75},
	{0.0, 0.5, -0.75},
	{-0.5, 0.0, -0.25},
	{0.5, 0.0, -0.25},
	{0.0, -0.5, 0.25},
	{0.0, 0.5, 0.25},
	{-0.5, 0.0, 0.75},
	{0.5, 0.0, 0.75},
}

// deltas is the integer form of residuals, used by Arrow.
var deltas = [8][3]int16{
	{1, -1, -1},
	{1, 1, -1},
	{0, 0, 0},
	{2, 0, 0},
	{1, -1, 1},
	{1, 1, 1},
	{0, 0, 2},
	{2, 0, 2},
}

// syndromes maps (v_bit, h_bit, c_bits) to the Residual produced by Arrow.
var syndromes = [2][2][4]Residual{
	{
		{2, 5, 6, 1},
		{7, 4, 3, 0},
	},
	{
		{3, 0, 7, 4},
		{6, 1, 2, 5},
	},
}

// Residual represents ½A - B where A -> B. There are exactly 8 values.
type Residual uint8

// AllResiduals lists every possible Residual.
var AllResiduals = [8]Residual{0, 1, 2, 3, 4, 5, 6, 7}

// VHC returns the coordinates of r.
func (r Residual) VHC() (float32, float32, float32) {
	v := residuals[r]
	return v[0], v[1], v[2]
}

// Arrow finds the nearest ShiftedBCC to ½p, and returns it and the
// Residual ½p - destination.
func (p ShiftedBCC) Arrow() (ShiftedBCC, Residual) {
	vBit := (p.v >> 1) & 1
	hBit := (p.h >> 1) & 1
	cBits := p.c & 3
	residual := syndromes[vBit][hBit][cBits]
	d := deltas[residual]
	destination := newInner((p.v-d[0])>>1, (p.h-d[1])>>1, (p.c-d[2])>>1)
	return destination, residual
}

// rotationVHC gives the coordinates of the four fixed points of Arrow,
// indexed by the terminal Residual that Chain uses to record them (see
// terminalResiduals below).
var rotationVHC = [4][3]float32{
	{1.0, 0.0, 0.5},
	{0.0, 1.0, -0.5},
	{-1.0, 0.0, 0.5},
	{0.0, -1.0, -0.5},
}

// terminalResiduals lists the Residual Arrow() reports
// when applied to each of the four fixed points, i.e. ½rotation - rotation.
var terminalResiduals = [4]Residual{2, 4, 3, 5}

// rotationIndexByTerminal inverts terminalResiduals.
var rotationIndexByTerminal = map[Residual]int{2: 0, 4: 1, 3: 2, 5: 3}

// Chain represents a ShiftedBCC as a sequence of Arrow steps: residuals
// from least to most significant, terminated by the Residual Arrow()
// reports at the fixed point the chain reaches. This fixed-point-residual
// design subsumes the older explicit-rotation design: the terminal
// Residual already determines the fixed point via rotationIndexByTerminal.
type Chain struct {
	Residuals []Residual
	Terminal  Residual
}

// ChainFromPoint converts a ShiftedBCC to a Chain.
func ChainFromPoint(p ShiftedBCC) Chain {
	var rs []Residual
	for {
		half, residual := p.Arrow()
		if half == p {
			return Chain{Residuals: rs, Terminal: residual}
		}
		rs = append(rs, residual)
		p = half
	}
}

// ChainQuantize quantizes (v, h, c) onto the lattice and converts the
// result to a Chain.
func ChainQuantize(v, h, c float32) Chain {
	p, _ := Quantize(v, h, c)
	return ChainFromPoint(p)
}

// ToPoint inverts ChainFromPoint's coordinate mapping.
func (c Chain) ToPoint() (v, h, fc float32) {
	idx, ok := rotationIndexByTerminal[c.Terminal]
	if !ok {
		panic("bcc: invalid chain terminal")
	}
	rv := rotationVHC[idx]
	v, h, fc = rv[0], rv[1], rv[2]
	for i := len(c.Residuals) - 1; i >= 0; i-- {
		dv, dh, dc := c.Residuals[i].VHC()
		v = (v + dv) * 2.0
		h = (h + dh) * 2.0
		fc = (fc + dc) * 2.0
	}
	return v, h, fc
}

// ToBCC converts c to a ShiftedBCC.
func (c Chain) ToBCC() ShiftedBCC {
	v, h, fc := c.ToPoint()
	return New(v, h, fc)
}

// Symmetry is one of the 4 lattice automorphisms generated by
// (v,h,c)->(h,v,-c) and (v,h,c)->(-h,-v,-c). The group is Z2 x Z2: the two
// generators are the low and high bit of the tag, and composition is XOR.
type Symmetry uint8

const (
	SymmetryIdentity Symmetry = 0
	SymmetryGen1     Symmetry = 1
	SymmetryGen2     Symmetry = 2
	SymmetryBoth     Symmetry = 3
)

// AllSymmetries lists every Symmetry.
var AllSymmetries = [4]Symmetry{SymmetryIdentity, SymmetryGen1, SymmetryGen2, SymmetryBoth}

// Compose returns s then t (the group is abelian, so order doesn't matter).
func (s Symmetry) Compose(t Symmetry) Symmetry { return s ^ t }

// Apply transforms (v, h, c) by s.
func (s Symmetry) Apply(v, h, c float32) (float32, float32, float32) {
	if s&SymmetryGen1 != 0 {
		v, h, c = h, v, -c
	}
	if s&SymmetryGen2 != 0 {
		v, h, c = -h, -v, -c
	}
	return v, h, c
}

// residualPermutation[s] maps a Residual index to the index reached by
// applying Symmetry s, precomputed from Apply over the residuals table.
var residualPermutation = [4][8]Residual{
	{0, 1, 2, 3, 4, 5, 6, 7},
	{6, 7, 4, 5, 2, 3, 0, 1},
	{7, 6, 5, 4, 3, 2, 1, 0},
	{1, 0, 3, 2, 5, 4, 7, 6},
}

// ApplyResidual applies s to a Residual.
func (s Symmetry) ApplyResidual(r Residual) Residual { return residualPermutation[s][r] }

// recommendedSymmetry[r] canonicalises r's fixed point to residual index 0
// (for the {0,1,6,7} orbit) or 4 (for the {2,3,4,5} orbit, which contains
// every terminalResiduals value).
var recommendedSymmetry = [8]Symmetry{
	SymmetryIdentity, SymmetryBoth, SymmetryGen1, SymmetryGen2,
	SymmetryIdentity, SymmetryBoth, SymmetryGen1, SymmetryGen2,
}

// RecommendedSymmetry returns the symmetry that canonicalises r.
func RecommendedSymmetry(r Residual) Symmetry { return recommendedSymmetry[r] }

// Canonicalize applies c's terminal's recommended symmetry pointwise to
// every residual and to the terminal, canonicalising the chain's fixed
// point to residual index 0 or 4.
func (c Chain) Canonicalize() Chain {
	s := RecommendedSymmetry(c.Terminal)
	out := Chain{Terminal: s.ApplyResidual(c.Terminal), Residuals: make([]Residual, len(c.Residuals))}
	for i, r := range c.Residuals {
		out.Residuals[i] = s.ApplyResidual(r)
	}
	return out
}
