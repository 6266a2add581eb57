// Package quantize converts between analogue wavelet-coefficient trees and
// digital ShiftedBCC trees, using a perceptual tolerance model and a local
// rate-distortion decision to prune subtrees to Leaf.
package quantize

import (
	"math"

	"github.com/apt1002/fvq-go/internal/bcc"
	"github.com/apt1002/fvq-go/internal/haar"
	"github.com/apt1002/fvq-go/internal/pyramid"
	"github.com/apt1002/fvq-go/internal/quad"
)

// Tolerance is the perceptual sensitivity model: the smallest visible
// difference at a given linear luma. Smaller tolerance means finer
// quantisation in bright regions. Clamped away from zero so dark regions
// don't divide by a vanishing sensitivity.
func Tolerance(linear float32) float32 {
	luma := linear
	if luma < 0.001 {
		luma = 0.001
	}
	return luma / (3 * float32(math.Cbrt(float64(luma))))
}

// ToDigital converts an analogue tree to a digital one, given the number
// of wavelet levels (order) and the low-frequency value feeding the root.
func ToDigital(order int, low float32, tree quad.Tree[pyramid.Triplet]) quad.Tree[bcc.ShiftedBCC] {
	t, _, _ := toDigitalInner(low, tree, pow2(-order))
	return t
}

func toDigitalInner(low float32, tree quad.Tree[pyramid.Triplet], gain float32) (quad.Tree[bcc.ShiftedBCC], float32, float32) {
	if tree.IsLeaf() {
		return quad.Leaf[bcc.ShiftedBCC](), 0.0, 0.0
	}

	tolerance := Tolerance(low * gain)
	sensitivity := 1.0 / tolerance

	payload := tree.Payload()
	v, h, c := payload.V, payload.H, payload.C
	leafNorm := v*v + h*h + c*c

	point, branchErrorNorm := bcc.Quantize(sensitivity*v, sensitivity*h, sensitivity*c)

	newV := tolerance * point.V()
	newH := tolerance * point.H()
	newC := tolerance * point.C()
	childLows := haar.New(low, newV, newH, newC).Transform()

	childTrees := tree.Children()
	var digitalChildren [2][2]quad.Tree[bcc.ShiftedBCC]
	childTrees.Each(func(row, col bool, child quad.Tree[pyramid.Triplet]) {
		childDigital, childErrorNorm, childLeafNorm := toDigitalInner(childLows.At(row, col), child, gain*2.0)
		branchErrorNorm += childErrorNorm
		leafNorm += childLeafNorm
		digitalChildren[boolIndex(row)][boolIndex(col)] = childDigital
	})

	leafErrorNorm := leafNorm * (sensitivity * sensitivity)
	if leafErrorNorm < branchErrorNorm {
		return quad.Leaf[bcc.ShiftedBCC](), leafErrorNorm, leafNorm
	}
	children := quad.NewQuad(digitalChildren[0][0], digitalChildren[0][1], digitalChildren[1][0], digitalChildren[1][1])
	return quad.Branch(point, children), branchErrorNorm, leafNorm
}

// FromDigital inverts ToDigital.
func FromDigital(order int, low float32, tree quad.Tree[bcc.ShiftedBCC]) quad.Tree[pyramid.Triplet] {
	return fromDigitalInner(low, tree, pow2(-order))
}

func fromDigitalInner(low float32, tree quad.Tree[bcc.ShiftedBCC], gain float32) quad.Tree[pyramid.Triplet] {
	if tree.IsLeaf() {
		return quad.Leaf[pyramid.Triplet]()
	}

	tolerance := Tolerance(low * gain)
	point := tree.Payload()
	v := tolerance * point.V()
	h := tolerance * point.H()
	c := tolerance * point.C()
	childLows := haar.New(low, v, h, c).Transform()

	childTrees := tree.Children()
	var analogueChildren [2][2]quad.Tree[pyramid.Triplet]
	childTrees.Each(func(row, col bool, child quad.Tree[bcc.ShiftedBCC]) {
		analogueChildren[boolIndex(row)][boolIndex(col)] = fromDigitalInner(childLows.At(row, col), child, gain*2.0)
	})

	children := quad.NewQuad(analogueChildren[0][0], analogueChildren[0][1], analogueChildren[1][0], analogueChildren[1][1])
	return quad.Branch(pyramid.Triplet{V: v, H: h, C: c}, children)
}

func pow2(n int) float32 {
	return float32(math.Pow(2, float64(n)))
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
