package linear

// WeightVector owns the dense weight storage indexed by (label, feature)
// and scores sparse feature vectors against it.
//
// The flat offset returned by WeightIndex is stable across feature growth:
// storage is feature-major, so appending features never invalidates
// previously issued offsets.
type WeightVector interface {
	// Scores returns one score per label for the given vector. Feature
	// indices outside the current feature dimension score zero.
	Scores(x SparseVector) []float64
	// WeightIndex maps (label, feature) to a flat offset into Raw.
	WeightIndex(labelIndex, featureIndex int) int
	LabelCount() int
	FeatureCount() int
	// ExpandFeatures grows the feature dimension to at least n.
	ExpandFeatures(n int)
	// Raw exposes the flat weight storage for the trainer. The slice is
	// invalidated by ExpandFeatures.
	Raw() []float64
	IsBinary() bool
}

// BinaryWeightVector stores one weight per feature. Label 0 is the
// positive class; label 1 scores the exact negation.
type BinaryWeightVector struct {
	W []float64 `json:"weights"`
}

// NewBinaryWeightVector creates an empty binary weight vector.
func NewBinaryWeightVector() *BinaryWeightVector {
	return &BinaryWeightVector{}
}

// Scores returns [s, -s] where s is the sparse dot product.
func (w *BinaryWeightVector) Scores(x SparseVector) []float64 {
	var s float64
	for i, idx := range x.Indices {
		if idx < len(w.W) {
			s += w.W[idx] * x.Values[i]
		}
	}
	return []float64{s, -s}
}

// WeightIndex ignores the label: both labels share the same storage slot.
func (w *BinaryWeightVector) WeightIndex(labelIndex, featureIndex int) int {
	return featureIndex
}

func (w *BinaryWeightVector) LabelCount() int   { return 2 }
func (w *BinaryWeightVector) FeatureCount() int { return len(w.W) }
func (w *BinaryWeightVector) Raw() []float64    { return w.W }
func (w *BinaryWeightVector) IsBinary() bool    { return true }

// ExpandFeatures grows the storage to at least n features.
func (w *BinaryWeightVector) ExpandFeatures(n int) {
	for len(w.W) < n {
		w.W = append(w.W, 0)
	}
}

// MultiWeightVector stores labelCount x featureCount weights in a flat
// feature-major array.
type MultiWeightVector struct {
	Labels   int       `json:"labels"`
	Features int       `json:"features"`
	W        []float64 `json:"weights"`
}

// NewMultiWeightVector creates a weight vector for the given label count.
func NewMultiWeightVector(labels int) *MultiWeightVector {
	return &MultiWeightVector{Labels: labels}
}

// Scores computes score[l] = sum over active features of weight(l, f) * value(f).
func (w *MultiWeightVector) Scores(x SparseVector) []float64 {
	scores := make([]float64, w.Labels)
	for i, idx := range x.Indices {
		if idx >= w.Features {
			continue
		}
		base := idx * w.Labels
		v := x.Values[i]
		for l := 0; l < w.Labels; l++ {
			scores[l] += w.W[base+l] * v
		}
	}
	return scores
}

// WeightIndex returns featureIndex*labelCount + labelIndex.
func (w *MultiWeightVector) WeightIndex(labelIndex, featureIndex int) int {
	return featureIndex*w.Labels + labelIndex
}

func (w *MultiWeightVector) LabelCount() int   { return w.Labels }
func (w *MultiWeightVector) FeatureCount() int { return w.Features }
func (w *MultiWeightVector) Raw() []float64    { return w.W }
func (w *MultiWeightVector) IsBinary() bool    { return false }

// ExpandFeatures grows the feature dimension to at least n, appending
// zero weights at the tail.
func (w *MultiWeightVector) ExpandFeatures(n int) {
	if n <= w.Features {
		return
	}
	grown := make([]float64, n*w.Labels)
	copy(grown, w.W)
	w.W = grown
	w.Features = n
}
