package linear

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// marginThreshold is the hinge margin below which an instance is treated
// as a correct, high-margin prediction and skipped.
const marginThreshold = 0.01

// AdaGradConfig holds the trainer hyperparameters.
type AdaGradConfig struct {
	Alpha   float64 // learning rate
	Rho     float64 // smoothing denominator, must be > 0
	Average bool    // install averaged weights at the end of training
}

// DefaultAdaGradConfig returns the hyperparameters used by the tagger.
func DefaultAdaGradConfig() AdaGradConfig {
	return AdaGradConfig{
		Alpha:   0.02,
		Rho:     0.1,
		Average: true,
	}
}

// AdaGradTrainer applies hinge-loss AdaGrad updates to a weight vector.
//
// The second-moment accumulator is shared across all training steps and
// never reset; it is owned entirely by the trainer and mutated only
// through Update. Updates must be applied from a single goroutine in a
// fixed instance order for reproducible weights.
type AdaGradTrainer struct {
	wv      WeightVector
	alpha   float64
	rho     float64
	average bool

	acc   []float64 // accumulated squared gradients per weight slot
	avg   []float64 // weighted running sum for weight averaging
	steps int       // instances consumed, 1-based inside Update
}

// NewAdaGradTrainer creates a trainer over the given weight vector.
// Rho must be positive: it is the only guard against division by zero
// when an accumulator slot is still empty.
func NewAdaGradTrainer(wv WeightVector, cfg AdaGradConfig) (*AdaGradTrainer, error) {
	if cfg.Rho <= 0 {
		return nil, fmt.Errorf("adagrad: rho must be > 0, got %g", cfg.Rho)
	}
	if cfg.Alpha <= 0 {
		return nil, fmt.Errorf("adagrad: alpha must be > 0, got %g", cfg.Alpha)
	}
	return &AdaGradTrainer{
		wv:      wv,
		alpha:   cfg.Alpha,
		rho:     cfg.Rho,
		average: cfg.Average,
	}, nil
}

// Steps returns the number of instances consumed so far.
func (t *AdaGradTrainer) Steps() int {
	return t.steps
}

// Train applies one pass over the instance stream and returns the number
// of updates actually applied.
func (t *AdaGradTrainer) Train(instances []IntInstance) int {
	updated := 0
	for _, inst := range instances {
		if t.Update(inst) {
			updated++
		}
	}
	return updated
}

// Update applies a single hinge-loss AdaGrad step. It reports false when
// the margin check passes (the gold label already wins by a sufficient
// margin) and the weights are left untouched.
func (t *AdaGradTrainer) Update(inst IntInstance) bool {
	t.steps++
	g := t.gradients(inst)
	if g[inst.Label] <= marginThreshold {
		return false
	}
	t.grow(inst.Vector)
	if t.wv.IsBinary() {
		t.updateBinary(inst.Vector, g)
	} else {
		t.updateMulti(inst.Vector, g)
	}
	return true
}

// gradients negates the raw scores and adds 1 to the gold label,
// yielding the hinge-loss subgradient per label.
func (t *AdaGradTrainer) gradients(inst IntInstance) []float64 {
	scores := t.wv.Scores(inst.Vector)
	floats.Scale(-1, scores)
	scores[inst.Label]++
	return scores
}

// grow extends the weight storage and the trainer's accumulators to cover
// any feature index the instance introduces. Feature-major storage keeps
// previously issued offsets valid across growth.
func (t *AdaGradTrainer) grow(x SparseVector) {
	if n := x.Len(); n > 0 {
		if maxIdx := x.Indices[n-1]; maxIdx >= t.wv.FeatureCount() {
			t.wv.ExpandFeatures(maxIdx + 1)
		}
	}
	need := len(t.wv.Raw())
	for len(t.acc) < need {
		t.acc = append(t.acc, 0)
	}
	if t.average {
		for len(t.avg) < need {
			t.avg = append(t.avg, 0)
		}
	}
}

func (t *AdaGradTrainer) updateMulti(x SparseVector, g []float64) {
	lsize := t.wv.LabelCount()
	g2 := make([]float64, lsize)
	for j := 0; j < lsize; j++ {
		g2[j] = g[j] * g[j]
	}

	// Accumulate second moments for every touched slot before any
	// weight moves, so each step is damped by its own gradient too.
	for i, xi := range x.Indices {
		vi2 := x.Values[i] * x.Values[i]
		for j := 0; j < lsize; j++ {
			t.acc[t.wv.WeightIndex(j, xi)] += vi2 * g2[j]
		}
	}

	w := t.wv.Raw()
	for i, xi := range x.Indices {
		vi := x.Values[i]
		for j := 0; j < lsize; j++ {
			idx := t.wv.WeightIndex(j, xi)
			t.apply(w, idx, t.alpha*g[j]*vi/math.Sqrt(t.rho+t.acc[idx]))
		}
	}
}

// updateBinary folds the two labels into the single shared storage slot.
// Label 1 is stored as the negation of label 0, so its gradient enters
// with opposite sign.
func (t *AdaGradTrainer) updateBinary(x SparseVector, g []float64) {
	eff := g[0] - g[1]
	eff2 := eff * eff

	for i, xi := range x.Indices {
		t.acc[xi] += x.Values[i] * x.Values[i] * eff2
	}

	w := t.wv.Raw()
	for i, xi := range x.Indices {
		t.apply(w, xi, t.alpha*eff*x.Values[i]/math.Sqrt(t.rho+t.acc[xi]))
	}
}

func (t *AdaGradTrainer) apply(w []float64, idx int, delta float64) {
	w[idx] += delta
	if t.average {
		t.avg[idx] += float64(t.steps) * delta
	}
}

// Finalize installs the averaged weights in place of the final raw
// weights when averaging is enabled. Uses the lazy-averaging identity:
// the mean of the weight trajectory equals w - sum(t*delta_t)/(T+1).
func (t *AdaGradTrainer) Finalize() {
	if !t.average || t.steps == 0 {
		return
	}
	t.grow(SparseVector{})
	w := t.wv.Raw()
	floats.AddScaled(w, -1/float64(t.steps+1), t.avg)
}
