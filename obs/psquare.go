// Package obs provides streaming statistical observers that can be
// attached to a running state machine without perturbing its real-time
// cycle: O(1) per-observation quantile estimation rather than retaining
// every sample.
package obs

import "math"

// Quantile implements the P-Square algorithm for streaming quantile
// estimation: O(1) per-observation updates and O(1) retrieval, against
// O(n log n) for a sort-based approach.
//
// Reference: Jain, R. and Chlamtac, I. (1985). "The P^2 Algorithm for
// Dynamic Calculation of Quantiles and Histograms Without Storing
// Observations". Communications of the ACM, 28(10), pp. 1076-1085.
//
// Not safe for concurrent use; callers that update the same Quantile
// from more than one goroutine must synchronize externally.
type Quantile struct {
	p  float64
	q  [5]float64
	n  [5]int
	np [5]float64
	dn [5]float64

	initialized bool
	count       int
	initBuffer  [5]float64
}

// NewQuantile returns an estimator for percentile p, clamped to [0, 1].
func NewQuantile(p float64) *Quantile {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return &Quantile{p: p, dn: [5]float64{0, p / 2, p, (1 + p) / 2, 1}}
}

// Update folds a new observation into the estimate.
func (ps *Quantile) Update(x float64) {
	ps.count++

	if ps.count <= 5 {
		ps.initBuffer[ps.count-1] = x
		if ps.count == 5 {
			ps.initialize()
		}
		return
	}

	var k int
	if x < ps.q[0] {
		ps.q[0] = x
		k = 0
	} else if x >= ps.q[4] {
		ps.q[4] = x
		k = 3
	} else {
		for k = 0; k < 4; k++ {
			if ps.q[k] <= x && x < ps.q[k+1] {
				break
			}
		}
	}

	for i := k + 1; i < 5; i++ {
		ps.n[i]++
	}
	for i := 0; i < 5; i++ {
		ps.np[i] += ps.dn[i]
	}

	for i := 1; i < 4; i++ {
		d := ps.np[i] - float64(ps.n[i])
		if (d >= 1 && ps.n[i+1]-ps.n[i] > 1) || (d <= -1 && ps.n[i-1]-ps.n[i] < -1) {
			sign := 1
			if d < 0 {
				sign = -1
			}
			qPrime := ps.parabolic(i, sign)
			if ps.q[i-1] < qPrime && qPrime < ps.q[i+1] {
				ps.q[i] = qPrime
			} else {
				ps.q[i] = ps.linear(i, sign)
			}
			ps.n[i] += sign
		}
	}
}

func (ps *Quantile) initialize() {
	for i := 1; i < 5; i++ {
		key := ps.initBuffer[i]
		j := i - 1
		for j >= 0 && ps.initBuffer[j] > key {
			ps.initBuffer[j+1] = ps.initBuffer[j]
			j--
		}
		ps.initBuffer[j+1] = key
	}
	for i := 0; i < 5; i++ {
		ps.q[i] = ps.initBuffer[i]
		ps.n[i] = i
	}
	ps.np = [5]float64{0, 2 * ps.p, 4 * ps.p, 2 + 2*ps.p, 4}
	ps.initialized = true
}

func (ps *Quantile) parabolic(i, d int) float64 {
	df := float64(d)
	ni := float64(ps.n[i])
	niPrev := float64(ps.n[i-1])
	niNext := float64(ps.n[i+1])

	term1 := df / (niNext - niPrev)
	term2 := (ni - niPrev + df) * (ps.q[i+1] - ps.q[i]) / (niNext - ni)
	term3 := (niNext - ni - df) * (ps.q[i] - ps.q[i-1]) / (ni - niPrev)
	return ps.q[i] + term1*(term2+term3)
}

func (ps *Quantile) linear(i, d int) float64 {
	if d == 1 {
		return ps.q[i] + (ps.q[i+1]-ps.q[i])/float64(ps.n[i+1]-ps.n[i])
	}
	return ps.q[i] - (ps.q[i]-ps.q[i-1])/float64(ps.n[i]-ps.n[i-1])
}

// Value returns the current quantile estimate.
func (ps *Quantile) Value() float64 {
	if ps.count == 0 {
		return 0
	}
	if ps.count < 5 {
		sorted := make([]float64, ps.count)
		copy(sorted, ps.initBuffer[:ps.count])
		for i := 1; i < ps.count; i++ {
			key := sorted[i]
			j := i - 1
			for j >= 0 && sorted[j] > key {
				sorted[j+1] = sorted[j]
				j--
			}
			sorted[j+1] = key
		}
		index := int(float64(ps.count-1) * ps.p)
		if index >= ps.count {
			index = ps.count - 1
		}
		return sorted[index]
	}
	return ps.q[2]
}

// Count returns the number of observations folded in so far.
func (ps *Quantile) Count() int { return ps.count }

// Max returns the maximum observed value.
func (ps *Quantile) Max() float64 {
	if ps.count == 0 {
		return 0
	}
	if ps.count < 5 {
		max := ps.initBuffer[0]
		for i := 1; i < ps.count; i++ {
			if ps.initBuffer[i] > max {
				max = ps.initBuffer[i]
			}
		}
		return max
	}
	return ps.q[4]
}

// MultiQuantile tracks several percentiles of the same observation
// stream, plus sum/count/max for a mean and max alongside the quantiles.
type MultiQuantile struct {
	estimators []*Quantile
	percentile []float64
	sum        float64
	count      int
	max        float64
}

// NewMultiQuantile returns an estimator tracking every percentile given,
// each in [0, 1].
func NewMultiQuantile(percentiles ...float64) *MultiQuantile {
	m := &MultiQuantile{
		estimators: make([]*Quantile, len(percentiles)),
		percentile: append([]float64(nil), percentiles...),
		max:        -math.MaxFloat64,
	}
	for i, p := range percentiles {
		m.estimators[i] = NewQuantile(p)
	}
	return m
}

// Update folds a new observation into every tracked percentile.
func (m *MultiQuantile) Update(x float64) {
	m.count++
	m.sum += x
	if x > m.max {
		m.max = x
	}
	for _, est := range m.estimators {
		est.Update(x)
	}
}

// Quantile returns the estimate for the percentile registered at index i.
func (m *MultiQuantile) Quantile(i int) float64 {
	if i < 0 || i >= len(m.estimators) {
		return 0
	}
	return m.estimators[i].Value()
}

// Count returns the total number of observations folded in.
func (m *MultiQuantile) Count() int { return m.count }

// Sum returns the sum of all observations.
func (m *MultiQuantile) Sum() float64 { return m.sum }

// Max returns the maximum observed value.
func (m *MultiQuantile) Max() float64 {
	if m.count == 0 {
		return 0
	}
	return m.max
}

// Mean returns the arithmetic mean of all observations.
func (m *MultiQuantile) Mean() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

// Reset clears all state for reuse, keeping the same tracked percentiles.
func (m *MultiQuantile) Reset() {
	m.sum = 0
	m.count = 0
	m.max = -math.MaxFloat64
	for i, p := range m.percentile {
		m.estimators[i] = NewQuantile(p)
	}
}
