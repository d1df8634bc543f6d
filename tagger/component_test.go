package tagger

import (
	"testing"

	"github.com/Rygbee/clearnlp/linear"
)

// fixedExtractor returns the same single-feature vector for any state.
type fixedExtractor struct {
	feature string
}

func (e fixedExtractor) Extract(s State) *linear.StringFeatureVector {
	v := linear.NewStringFeatureVector()
	v.Add(e.feature)
	return v
}

// biasedModel builds a frozen NN/VB model whose weights always prefer VB
// for the "b" feature.
func biasedModel(t *testing.T) *linear.Model {
	t.Helper()
	m := linear.NewModel(false)
	v1 := linear.NewStringFeatureVector()
	v1.Add("b")
	m.AddInstance(linear.Instance{Label: "NN", Vector: v1})
	v2 := linear.NewStringFeatureVector()
	v2.Add("b")
	m.AddInstance(linear.Instance{Label: "VB", Vector: v2})
	if _, err := m.Freeze(1, 1); err != nil {
		t.Fatal(err)
	}
	w := m.Multi
	f := m.Features.Get("b")
	w.W[w.WeightIndex(m.Labels.IndexOf("VB"), f)] = 1.0
	return m
}

func TestTrainAssignsGold(t *testing.T) {
	model := biasedModel(t)
	comp := NewTrainer(fixedExtractor{"b"}, model)

	state := NewPOSState([]string{"can"}, []string{"NN"})
	comp.Process(state)

	// Train mode records gold and assigns gold, regardless of what the
	// model would predict.
	if state.Labels[0] != "NN" {
		t.Errorf("train-mode label = %q, want NN", state.Labels[0])
	}
	instances := comp.Instances()
	if len(instances) != 1 || instances[0].Label != "NN" {
		t.Fatalf("instances = %+v, want one NN instance", instances)
	}
}

func TestBootstrapAssignsPrediction(t *testing.T) {
	model := biasedModel(t)
	comp := NewBootstrapper(fixedExtractor{"b"}, model)

	state := NewPOSState([]string{"can"}, []string{"NN"})
	comp.Process(state)

	// Bootstrap mode still records gold but assigns the model's own
	// top prediction.
	if state.Labels[0] != "VB" {
		t.Errorf("bootstrap-mode label = %q, want VB", state.Labels[0])
	}
	instances := comp.Instances()
	if len(instances) != 1 || instances[0].Label != "NN" {
		t.Fatalf("instances = %+v, want one NN instance", instances)
	}
}

func TestDecodeAndEvaluateRecordNothing(t *testing.T) {
	model := biasedModel(t)
	for _, comp := range []*Component{
		NewDecoder(fixedExtractor{"b"}, model),
		NewEvaluator(fixedExtractor{"b"}, model),
	} {
		state := NewPOSState([]string{"can"}, []string{"NN"})
		comp.Process(state)
		if state.Labels[0] != "VB" {
			t.Errorf("%s label = %q, want VB", comp.Flag(), state.Labels[0])
		}
		if len(comp.Instances()) != 0 {
			t.Errorf("%s recorded %d instances, want 0", comp.Flag(), len(comp.Instances()))
		}
	}
}

func TestCollectRecordsToModel(t *testing.T) {
	model := linear.NewModel(false)
	comp := NewCollector(fixedExtractor{"b"}, model)

	state := NewPOSState([]string{"can"}, []string{"NN"})
	comp.Process(state)

	if model.CollectedSize() != 1 {
		t.Errorf("CollectedSize = %d, want 1", model.CollectedSize())
	}
	if state.Labels[0] != "" {
		t.Errorf("collect mode assigned label %q, want none", state.Labels[0])
	}
	if len(comp.Instances()) != 0 {
		t.Error("collect mode must not record component instances")
	}
}

func TestFlagString(t *testing.T) {
	flags := map[Flag]string{
		FlagCollect:   "collect",
		FlagTrain:     "train",
		FlagBootstrap: "bootstrap",
		FlagEvaluate:  "evaluate",
		FlagDecode:    "decode",
		Flag(99):      "unknown",
	}
	for f, want := range flags {
		if f.String() != want {
			t.Errorf("Flag(%d).String() = %q, want %q", f, f.String(), want)
		}
	}
}
