// Package stats checks ranged draws for bucket uniformity.
package stats

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Histogram counts values of [Min, Max] into equal-width buckets.
type Histogram struct {
	Min, Max int64
	Counts   []float64
}

// NewHistogram creates a histogram with n buckets over [min, max].
func NewHistogram(min, max int64, n int) (*Histogram, error) {
	if n < 2 {
		return nil, errors.New("stats: need at least 2 buckets")
	}
	if max < min {
		return nil, fmt.Errorf("stats: max %d < min %d", max, min)
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return nil, errors.New("stats: range too wide")
	}
	if span < uint64(n-1) {
		return nil, fmt.Errorf("stats: %d buckets exceed %d distinct values", n, span+1)
	}
	return &Histogram{Min: min, Max: max, Counts: make([]float64, n)}, nil
}

// Bucket returns the bucket index of v. Values outside [Min, Max] return -1.
func (h *Histogram) Bucket(v int64) int {
	if v < h.Min || v > h.Max {
		return -1
	}
	width := uint64(h.Max) - uint64(h.Min) + 1
	hi, lo := bits.Mul64(uint64(v)-uint64(h.Min), uint64(len(h.Counts)))
	b, _ := bits.Div64(hi, lo, width)
	return int(b)
}

// Add counts v. It reports false when v lies outside the histogram range.
func (h *Histogram) Add(v int64) bool {
	b := h.Bucket(v)
	if b < 0 {
		return false
	}
	h.Counts[b]++
	return true
}

// Report is the outcome of a chi-square goodness-of-fit test against the
// uniform distribution.
type Report struct {
	Samples   int
	Buckets   int
	Statistic float64
	DoF       float64
	PValue    float64
}

// Uniform reports whether the uniform hypothesis survives at significance alpha.
func (r Report) Uniform(alpha float64) bool {
	return r.PValue >= alpha
}

func (r Report) String() string {
	return fmt.Sprintf("samples=%d buckets=%d chi2=%.4f dof=%.0f p=%.4f",
		r.Samples, r.Buckets, r.Statistic, r.DoF, r.PValue)
}

// ChiSquare tests the histogram against equal expected counts. Buckets are
// treated as equal width; with a bucket count that does not divide the range
// the expected counts are off by at most one value per bucket.
func (h *Histogram) ChiSquare() Report {
	total := floats.Sum(h.Counts)
	n := len(h.Counts)

	expected := make([]float64, n)
	for i := range expected {
		expected[i] = total / float64(n)
	}

	chi2 := stat.ChiSquare(h.Counts, expected)
	dof := float64(n - 1)
	return Report{
		Samples:   int(total),
		Buckets:   n,
		Statistic: chi2,
		DoF:       dof,
		PValue:    distuv.ChiSquared{K: dof}.Survival(chi2),
	}
}
