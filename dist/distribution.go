// Package dist implements Distribution, a weighted discrete probability
// distribution with O(1) sampling via Walker's alias method. Grounded on
// the teacher's pooled, precomputed-table approach to hot-path randomness
// (engine/types.go's StatePool, mcts/node.go's UCB1 precomputation) and on
// the source's tft::Distribution, which wraps rand_distr::WeightedAliasIndex.
package dist

import (
	"fmt"
	"math"
	"math/rand"
)

// Distribution is an immutable association of weights to elements. Once
// constructed, sampling never fails.
type Distribution[T any] struct {
	elements []T
	prob     []float64 // alias-table probability column, len == len(elements)
	alias    []int     // alias-table alias column, len == len(elements)
}

// New builds a weighted distribution over elements with the given
// parallel weights. Construction fails if elements is empty, longer than
// can be indexed by int, or any weight is negative, infinite, NaN, or the
// weights sum to zero.
func New[T any](elements []T, weights []float64) (*Distribution[T], error) {
	if len(elements) != len(weights) {
		return nil, fmt.Errorf("dist: elements and weights must have equal length, got %d and %d", len(elements), len(weights))
	}
	n := len(elements)
	if n == 0 {
		return nil, fmt.Errorf("dist: distribution must have at least one element")
	}

	var total float64
	for _, w := range weights {
		if w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
			return nil, fmt.Errorf("dist: weight %v is negative, infinite, or NaN", w)
		}
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("dist: weights must not all be zero")
	}

	els := make([]T, n)
	copy(els, elements)

	prob, alias := buildAliasTable(weights, total)

	return &Distribution[T]{elements: els, prob: prob, alias: alias}, nil
}

// buildAliasTable constructs Walker's alias table (Vose's algorithm) for
// weights normalized by total, each scaled so the average bucket
// probability is 1.
func buildAliasTable(weights []float64, total float64) (prob []float64, alias []int) {
	n := len(weights)
	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = w / total * float64(n)
	}

	prob = make([]float64, n)
	alias = make([]int, n)

	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, p := range scaled {
		if p < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		prob[l] = scaled[l]
		alias[l] = g

		scaled[g] = scaled[g] + scaled[l] - 1.0
		if scaled[g] < 1.0 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}

	for len(large) > 0 {
		g := large[len(large)-1]
		large = large[:len(large)-1]
		prob[g] = 1.0
	}
	for len(small) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		prob[l] = 1.0
	}

	return prob, alias
}

// Len returns the number of distinct elements in the distribution.
func (d *Distribution[T]) Len() int { return len(d.elements) }

// Elements returns a defensive copy of the distribution's elements, in
// the order weights were supplied.
func (d *Distribution[T]) Elements() []T {
	cp := make([]T, len(d.elements))
	copy(cp, d.elements)
	return cp
}

// SampleUsing draws one element with probability proportional to its
// weight, using rng as the source of randomness.
func (d *Distribution[T]) SampleUsing(rng *rand.Rand) T {
	i := rng.Intn(len(d.elements))
	if rng.Float64() < d.prob[i] {
		return d.elements[i]
	}
	return d.elements[d.alias[i]]
}

// Sample draws one element using the process-wide default randomness
// source, safe for concurrent use across matches running in parallel.
func (d *Distribution[T]) Sample() T {
	i := Intn(len(d.elements))
	if Float64() < d.prob[i] {
		return d.elements[i]
	}
	return d.elements[d.alias[i]]
}
