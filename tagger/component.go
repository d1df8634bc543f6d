// Package tagger implements the flag-driven statistical tagging component
// and a part-of-speech tagger built on it.
package tagger

import (
	"github.com/Rygbee/clearnlp/linear"
)

// Flag selects the operating mode of a statistical component. It is set
// by the constructor variant and never mutated afterwards.
type Flag int

const (
	FlagCollect Flag = iota
	FlagTrain
	FlagBootstrap
	FlagEvaluate
	FlagDecode
)

// String returns the flag name.
func (f Flag) String() string {
	switch f {
	case FlagCollect:
		return "collect"
	case FlagTrain:
		return "train"
	case FlagBootstrap:
		return "bootstrap"
	case FlagEvaluate:
		return "evaluate"
	case FlagDecode:
		return "decode"
	}
	return "unknown"
}

// State is a single labeling decision point within a processing sequence.
type State interface {
	// GoldLabel returns the annotated label, when available.
	GoldLabel() string
	// SetLabel assigns the resolved label back onto the state, where
	// later feature extraction can observe it.
	SetLabel(label string)
}

// Extractor derives the feature vector for a state. Every operating mode
// runs the identical extraction call so that train-time and decode-time
// features stay comparable.
type Extractor interface {
	Extract(s State) *linear.StringFeatureVector
}

// Component applies one operating mode to every state it processes.
//
//   - collect: forward the extracted vector to the model's instance
//     collector; no label is assigned.
//   - train: record (gold, vector) and assign the gold label, so later
//     positions extract features over gold context.
//   - bootstrap: record (gold, vector) but assign the model's own
//     prediction, so recorded context reflects the model's real errors.
//   - evaluate/decode: predict and assign; nothing is recorded.
type Component struct {
	flag      Flag
	model     *linear.Model
	extractor Extractor
	instances []linear.Instance
}

// NewCollector creates a component that only accumulates vocabulary counts.
func NewCollector(e Extractor, model *linear.Model) *Component {
	return &Component{flag: FlagCollect, extractor: e, model: model}
}

// NewTrainer creates a component that records gold-labeled instances.
func NewTrainer(e Extractor, model *linear.Model) *Component {
	return &Component{flag: FlagTrain, extractor: e, model: model}
}

// NewBootstrapper creates a component that records gold-labeled instances
// while tagging with the model's own predictions.
func NewBootstrapper(e Extractor, model *linear.Model) *Component {
	return &Component{flag: FlagBootstrap, extractor: e, model: model}
}

// NewEvaluator creates a component that tags without recording.
func NewEvaluator(e Extractor, model *linear.Model) *Component {
	return &Component{flag: FlagEvaluate, extractor: e, model: model}
}

// NewDecoder creates a component for plain decoding.
func NewDecoder(e Extractor, model *linear.Model) *Component {
	return &Component{flag: FlagDecode, extractor: e, model: model}
}

// Flag returns the operating mode.
func (c *Component) Flag() Flag {
	return c.flag
}

// Instances returns the instances recorded by train or bootstrap processing.
func (c *Component) Instances() []linear.Instance {
	return c.instances
}

// Process applies exactly one mode branch to the state.
func (c *Component) Process(s State) {
	switch c.flag {
	case FlagCollect:
		c.collect(s)
	case FlagTrain:
		c.train(s)
	case FlagBootstrap:
		c.bootstrap(s)
	default:
		c.decode(s)
	}
}

func (c *Component) collect(s State) {
	vector := c.extractor.Extract(s)
	c.model.AddInstance(linear.Instance{Label: s.GoldLabel(), Vector: vector})
}

func (c *Component) train(s State) {
	vector := c.extractor.Extract(s)
	label := s.GoldLabel()
	c.instances = append(c.instances, linear.Instance{Label: label, Vector: vector})
	s.SetLabel(label)
}

func (c *Component) bootstrap(s State) {
	vector := c.extractor.Extract(s)
	c.instances = append(c.instances, linear.Instance{Label: s.GoldLabel(), Vector: vector})
	s.SetLabel(c.autoLabel(vector))
}

func (c *Component) decode(s State) {
	vector := c.extractor.Extract(s)
	s.SetLabel(c.autoLabel(vector))
}

func (c *Component) autoLabel(vector *linear.StringFeatureVector) string {
	x := c.model.ToSparseVector(vector)
	return c.model.PredictBest(x).Label
}
