package linear

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Prediction pairs a label with its score.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Model owns a weight vector, a label map, and the frozen feature
// vocabulary. It is created empty for training, frozen once instance
// collection ends, and read-only thereafter.
type Model struct {
	Binary   bool                `json:"binary"`
	Labels   *LabelMap           `json:"labels"`
	Features *Alphabet           `json:"features"`
	Multi    *MultiWeightVector  `json:"multi_weights,omitempty"`
	Bin      *BinaryWeightVector `json:"binary_weights,omitempty"`

	collector *Collector
	dropped   int
}

// NewModel creates an empty model for training.
func NewModel(binary bool) *Model {
	return &Model{
		Binary:    binary,
		Labels:    NewLabelMap(),
		Features:  NewAlphabet(),
		collector: NewCollector(),
	}
}

// WeightVector returns the model's weight storage, or nil before the
// vocabulary freeze.
func (m *Model) WeightVector() WeightVector {
	if m.Binary {
		if m.Bin == nil {
			return nil
		}
		return m.Bin
	}
	if m.Multi == nil {
		return nil
	}
	return m.Multi
}

// LabelCount returns the number of labels.
func (m *Model) LabelCount() int {
	return m.WeightVector().LabelCount()
}

// FeatureCount returns the frozen feature dimension.
func (m *Model) FeatureCount() int {
	return m.WeightVector().FeatureCount()
}

// AddInstance accumulates a raw instance into the training collector.
func (m *Model) AddInstance(inst Instance) {
	if m.collector == nil {
		m.collector = NewCollector()
	}
	m.collector.Add(inst)
}

// AddInstances accumulates a batch of raw instances.
func (m *Model) AddInstances(instances []Instance) {
	for _, inst := range instances {
		m.AddInstance(inst)
	}
}

// CollectedSize returns the number of instances accumulated so far.
func (m *Model) CollectedSize() int {
	if m.collector == nil {
		return 0
	}
	return m.collector.Size()
}

// Freeze applies the label and feature cutoffs to the collected counts,
// assigns dense indices, sizes the weight storage, and returns the
// collected instances resolved to integer form. Instances whose label is
// pruned or whose features are all pruned are dropped.
func (m *Model) Freeze(labelCutoff, featureCutoff int) ([]IntInstance, error) {
	if m.collector == nil || m.collector.Size() == 0 {
		return nil, fmt.Errorf("no instances collected")
	}
	for _, l := range m.collector.Labels(labelCutoff) {
		m.Labels.Add(l)
	}
	for _, f := range m.collector.Features(featureCutoff) {
		m.Features.Add(f)
	}
	if m.Labels.Size() == 0 {
		return nil, fmt.Errorf("label cutoff %d pruned every label", labelCutoff)
	}
	if m.Binary {
		if m.Labels.Size() != 2 {
			return nil, fmt.Errorf("binary model requires exactly 2 labels, got %d", m.Labels.Size())
		}
		m.Bin = NewBinaryWeightVector()
		m.Bin.ExpandFeatures(m.Features.Size())
	} else {
		m.Multi = NewMultiWeightVector(m.Labels.Size())
		m.Multi.ExpandFeatures(m.Features.Size())
	}

	var out []IntInstance
	for _, inst := range m.collector.Instances() {
		if ii := m.ToIntInstance(inst); ii != nil {
			out = append(out, *ii)
		}
	}
	m.collector = nil
	return out, nil
}

// ToIntInstance resolves a raw instance against the frozen vocabularies.
// Returns nil when the label is unknown or no features survive the cutoff.
func (m *Model) ToIntInstance(inst Instance) *IntInstance {
	label := m.Labels.IndexOf(inst.Label)
	if label < 0 {
		m.dropped++
		return nil
	}
	x := m.ToSparseVector(inst.Vector)
	if x.Len() == 0 {
		m.dropped++
		return nil
	}
	return &IntInstance{Label: label, Vector: x}
}

// ToSparseVector resolves a raw feature vector against the frozen feature
// vocabulary. Unknown features are skipped; duplicate indices are summed.
func (m *Model) ToSparseVector(v *StringFeatureVector) SparseVector {
	type entry struct {
		index int
		value float64
	}
	var entries []entry
	for i, f := range v.Features {
		if idx := m.Features.Get(f); idx >= 0 {
			entries = append(entries, entry{idx, v.Value(i)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	var x SparseVector
	for _, e := range entries {
		if n := len(x.Indices); n > 0 && x.Indices[n-1] == e.index {
			x.Values[n-1] += e.value
			continue
		}
		x.Indices = append(x.Indices, e.index)
		x.Values = append(x.Values, e.value)
	}
	return x
}

// DroppedInstances returns how many instances resolved to nothing since
// the vocabulary freeze.
func (m *Model) DroppedInstances() int {
	return m.dropped
}

// Scores returns the per-label scores for the given vector.
func (m *Model) Scores(x SparseVector) []float64 {
	return m.WeightVector().Scores(x)
}

func (m *Model) prediction(labelIndex int, score float64) Prediction {
	return Prediction{Label: m.Labels.Label(labelIndex), Score: score}
}

// PredictBest returns the highest-scoring label. The binary case picks
// label 0 iff its score is positive; the multi-class case takes the
// argmax, first index winning ties.
func (m *Model) PredictBest(x SparseVector) Prediction {
	scores := m.Scores(x)
	if m.Binary {
		if scores[0] > 0 {
			return m.prediction(0, scores[0])
		}
		return m.prediction(1, scores[1])
	}
	best := floats.MaxIdx(scores)
	return m.prediction(best, scores[best])
}

// PredictTop2 returns the two highest-scoring labels in order.
func (m *Model) PredictTop2(x SparseVector) (Prediction, Prediction) {
	scores := m.Scores(x)
	if m.Binary {
		fst, snd := m.prediction(0, scores[0]), m.prediction(1, scores[1])
		if scores[0] > 0 {
			return fst, snd
		}
		return snd, fst
	}
	best, second := 0, -1
	for i := 1; i < len(scores); i++ {
		switch {
		case scores[i] > scores[best]:
			second = best
			best = i
		case second < 0 || scores[i] > scores[second]:
			second = i
		}
	}
	if second < 0 {
		second = best
	}
	return m.prediction(best, scores[best]), m.prediction(second, scores[second])
}

// PredictAll returns the full label ranking in descending score order,
// ties broken by ascending label index.
func (m *Model) PredictAll(x SparseVector) []Prediction {
	if m.Binary {
		fst, snd := m.PredictTop2(x)
		return []Prediction{fst, snd}
	}
	scores := m.Scores(x)
	ranked := make([]Prediction, len(scores))
	for i, s := range scores {
		ranked[i] = m.prediction(i, s)
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// SaveModel serializes the model to JSON.
func SaveModel(model *Model, path string) error {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadModel deserializes a model from JSON. Any read or decode failure
// aborts the load; a partially initialized model is never returned.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return &model, nil
}
