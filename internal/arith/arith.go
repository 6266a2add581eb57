// Package arith implements a binary arithmetic coder: a fixed-point
// Interval type with 1/2^32 resolution, a Split probability model, and a
// Writer/Reader pair built over internal/bio's single-bit I/O.
package arith

import (
	"io"
	"math"

	"github.com/apt1002/fvq-go/internal/bio"
)

const scale uint64 = 1 << 32

// divideByScale divides x by scale, rounding to even.
func divideByScale(x uint64) uint32 {
	nudge := (x / scale) & 1
	return uint32((x + (scale/2 - 1) + nudge) / scale)
}

// Split models the relative probability of false and true: p1 is scale
// times the probability of true.
type Split struct {
	p1 uint32
}

func newSplitInner(p1 uint32) Split {
	if p1 > ^uint32(3) {
		p1 = ^uint32(3) // Small enough that Interval.below always changes.
	}
	if p1 < 4 {
		p1 = 4 // Large enough that Interval.above always changes.
	}
	return Split{p1: p1}
}

// NewSplit constructs a Split given the probability of true, clamped to
// [0, 1].
func NewSplit(p1 float64) Split {
	if p1 < 0 {
		p1 = 0
	} else if p1 > 1 {
		p1 = 1
	}
	return newSplitInner(uint32(math.Min(math.Round(float64(scale)*p1), float64(^uint32(0)))))
}

// NewSplitRatio constructs a Split given the frequency of false and of
// true.
func NewSplitRatio(f0, f1 uint64) Split {
	total := f0 + f1
	return NewSplit(float64(f1) / float64(total))
}

// Interval represents a sub-interval of [0, 1): below is the lower bound
// times scale, above is scale times (1 minus the upper bound).
type Interval struct {
	Below, Above uint32
}

// Split partitions i at the fraction model.p1, returning the false half
// then the true half. The two returned intervals share i's outer bounds
// and meet at the split point.
func (i Interval) Split(model Split) (Interval, Interval) {
	p1 := uint64(model.p1)
	p0 := scale - p1
	below := divideByScale(uint64(i.Below)*p1 + scale*p0 - uint64(i.Above)*p0)
	above := divideByScale(uint64(i.Above)*p0 + scale*p1 - uint64(i.Below)*p1)
	return Interval{Below: i.Below, Above: above}, Interval{Below: below, Above: i.Above}
}

// Half is equivalent to, but cheaper than, i.Split(NewSplit(0.5)).
func (i Interval) Half() (Interval, Interval) {
	const half = scale / 2
	below := divideByScale(uint64(i.Below)*half + scale*half - uint64(i.Above)*half)
	above := divideByScale(uint64(i.Above)*half + scale*half - uint64(i.Below)*half)
	return Interval{Below: i.Below, Above: above}, Interval{Below: below, Above: i.Above}
}

// Contains reports whether i contains other.
func (i Interval) Contains(other Interval) bool {
	return i.Below <= other.Below && i.Above <= other.Above
}

// Grow applies the twofold enlargement that maps half to WHOLE. half must
// contain i and be exactly half the size of WHOLE (LOWER, MIDDLE or
// UPPER).
func (i *Interval) Grow(half Interval) {
	i.Below = 2 * (i.Below - half.Below)
	i.Above = 2 * (i.Above - half.Above)
}

// The four intervals used by the encoder/decoder state machine.
var (
	Whole  = Interval{Below: 0, Above: 0}
	Lower  = Interval{Below: 0, Above: uint32(scale / 2)}
	Middle = Interval{Below: uint32(scale / 4), Above: uint32(scale / 4)}
	Upper  = Interval{Below: uint32(scale / 2), Above: 0}
)

// Writer encodes a stream of biased bits.
type Writer struct {
	inner       *bio.Writer
	unfair      Interval
	middleCount int
}

// NewWriter returns a Writer that writes to inner.
func NewWriter(inner io.Writer) *Writer {
	return &Writer{inner: bio.NewWriter(inner), unfair: Whole}
}

func (w *Writer) grow(half Interval) bool {
	if !half.Contains(w.unfair) {
		return false
	}
	w.unfair.Grow(half)
	return true
}

func (w *Writer) innerWrite(data bool) error {
	if err := w.inner.WriteBit(data); err != nil {
		return err
	}
	for i := 0; i < w.middleCount; i++ {
		if err := w.inner.WriteBit(!data); err != nil {
			return err
		}
	}
	w.middleCount = 0
	return nil
}

// Write encodes one bit under model.
func (w *Writer) Write(model Split, data bool) error {
	i0, i1 := w.unfair.Split(model)
	if data {
		w.unfair = i1
	} else {
		w.unfair = i0
	}
	for {
		if w.grow(Lower) {
			if err := w.innerWrite(false); err != nil {
				return err
			}
			continue
		}
		if w.grow(Upper) {
			if err := w.innerWrite(true); err != nil {
				return err
			}
			continue
		}
		break
	}
	for w.grow(Middle) {
		w.middleCount++
	}
	return nil
}

// Close flushes any pending disambiguating bits and padding, and returns
// the underlying writer.
func (w *Writer) Close() (io.Writer, error) {
	if w.unfair.Above > w.unfair.Below {
		if err := w.innerWrite(false); err != nil {
			return nil, err
		}
		if w.unfair.Below > 0 {
			if err := w.innerWrite(true); err != nil {
				return nil, err
			}
		}
	} else if w.unfair.Below > w.unfair.Above {
		if err := w.innerWrite(true); err != nil {
			return nil, err
		}
		if w.unfair.Above > 0 {
			if err := w.innerWrite(false); err != nil {
				return nil, err
			}
		}
	}
	return w.inner.Close()
}

// Reader decodes a stream of biased bits written by a Writer.
type Reader struct {
	inner  *bio.Reader
	unfair Interval
	fair   Interval
}

// NewReader returns a Reader that reads from inner.
func NewReader(inner io.Reader) *Reader {
	return &Reader{inner: bio.NewReader(inner), unfair: Whole, fair: Whole}
}

func (r *Reader) grow(half Interval) bool {
	if !half.Contains(r.unfair) {
		return false
	}
	r.unfair.Grow(half)
	r.fair.Grow(half)
	return true
}

// Read decodes one bit under model.
func (r *Reader) Read(model Split) (bool, error) {
	i0, i1 := r.unfair.Split(model)
	var data bool
	for {
		if i0.Contains(r.fair) {
			data, r.unfair = false, i0
			break
		}
		if i1.Contains(r.fair) {
			data, r.unfair = true, i1
			break
		}
		h0, h1 := r.fair.Half()
		bit, err := r.inner.ReadBit()
		if err != nil {
			return false, err
		}
		if bit {
			r.fair = h1
		} else {
			r.fair = h0
		}
	}
	for {
		if r.grow(Lower) {
			continue
		}
		if r.grow(Upper) {
			continue
		}
		break
	}
	for r.grow(Middle) {
	}
	return data, nil
}

// Close skips padding and returns the underlying reader.
func (r *Reader) Close() io.Reader {
	return r.inner.Close()
}
