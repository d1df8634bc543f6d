package linear

// StringFeatureVector is a raw feature vector keyed by feature strings,
// produced by feature extraction before vocabularies are frozen.
// Binary features carry an implicit value of 1.
type StringFeatureVector struct {
	Features []string
	Values   []float64 // nil while all features are binary
}

// NewStringFeatureVector creates an empty raw feature vector.
func NewStringFeatureVector() *StringFeatureVector {
	return &StringFeatureVector{}
}

// Add appends a binary feature.
func (v *StringFeatureVector) Add(feature string) {
	v.Features = append(v.Features, feature)
	if v.Values != nil {
		v.Values = append(v.Values, 1)
	}
}

// AddValued appends a feature with an explicit value.
func (v *StringFeatureVector) AddValued(feature string, value float64) {
	if v.Values == nil {
		v.Values = make([]float64, len(v.Features), len(v.Features)+1)
		for i := range v.Values {
			v.Values[i] = 1
		}
	}
	v.Features = append(v.Features, feature)
	v.Values = append(v.Values, value)
}

// Size returns the number of features.
func (v *StringFeatureVector) Size() int {
	return len(v.Features)
}

// Value returns the value of the i-th feature.
func (v *StringFeatureVector) Value(i int) float64 {
	if v.Values == nil {
		return 1
	}
	return v.Values[i]
}

// SparseVector is a resolved feature vector: strictly increasing feature
// indices with parallel values, no duplicates.
type SparseVector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// Len returns the number of active features.
func (v SparseVector) Len() int {
	return len(v.Indices)
}
