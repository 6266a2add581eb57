// Package stats tallies the empirical frequency of residual chains across
// a corpus, feeding priors for the arithmetic coder's probability models.
package stats

import (
	"github.com/apt1002/fvq-go/internal/bcc"
	"github.com/apt1002/fvq-go/internal/pyramid"
	"github.com/apt1002/fvq-go/internal/quad"
	"github.com/apt1002/fvq-go/internal/quantize"
)

// BCCSummary abbreviates a ShiftedBCC's chain after canonicalising by its
// recommended symmetry.
type BCCSummary struct {
	Terminal    bcc.Residual
	Length      uint8
	First, Last bcc.Residual
}

func summarize(chain bcc.Chain) BCCSummary {
	chain = chain.Canonicalize()
	if len(chain.Residuals) == 0 {
		return BCCSummary{Terminal: chain.Terminal, Length: 0, First: chain.Terminal, Last: chain.Terminal}
	}
	return BCCSummary{
		Terminal: chain.Terminal,
		Length:   uint8(len(chain.Residuals)),
		First:    chain.Residuals[0],
		Last:     chain.Residuals[len(chain.Residuals)-1],
	}
}

// BCCStatistics tallies leaves, zero-residual chains (keyed by
// canonicalised terminal) and longer chains (keyed by BCCSummary).
type BCCStatistics struct {
	LeafCount      int
	ShortBCCCounts map[bcc.Residual]int
	BCCCounts      map[BCCSummary]int
}

// NewBCCStatistics returns an empty BCCStatistics.
func NewBCCStatistics() *BCCStatistics {
	return &BCCStatistics{
		ShortBCCCounts: make(map[bcc.Residual]int),
		BCCCounts:      make(map[BCCSummary]int),
	}
}

// CountLeaf records one Tree Leaf.
func (s *BCCStatistics) CountLeaf() { s.LeafCount++ }

// CountBCC records one Tree Branch's payload.
func (s *BCCStatistics) CountBCC(point bcc.ShiftedBCC) {
	chain := bcc.ChainFromPoint(point)
	if len(chain.Residuals) == 0 {
		s.ShortBCCCounts[chain.Canonicalize().Terminal]++
		return
	}
	s.BCCCounts[summarize(chain)]++
}

// CountTree recursively counts every node of tree.
func (s *BCCStatistics) CountTree(tree quad.Tree[bcc.ShiftedBCC]) {
	if tree.IsLeaf() {
		s.CountLeaf()
		return
	}
	s.CountBCC(tree.Payload())
	tree.Children().Each(func(_, _ bool, child quad.Tree[bcc.ShiftedBCC]) {
		s.CountTree(child)
	})
}

// CountPyramid quantizes and counts every tree of p.
func (s *BCCStatistics) CountPyramid(p pyramid.Pyramid) {
	h, w := p.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			low := p.Low[y][x]
			pos := pyramid.Position{Level: 0, Y: y, X: x}
			tree := p.Get(pos)
			digital := quantize.ToDigital(p.Order(), low, tree)
			s.CountTree(digital)
		}
	}
}
