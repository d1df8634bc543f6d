package tagger

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/Rygbee/clearnlp/dictionary"
	"github.com/Rygbee/clearnlp/internal/textutil"
	"github.com/Rygbee/clearnlp/linear"
)

// POSTagger assigns part-of-speech tags using a trained linear model.
// Once trained (or loaded) it is read-only and safe for concurrent use.
type POSTagger struct {
	Model     *linear.Model
	Lexicon   *Lexicon
	Extractor ExtractorConfig

	dict *dictionary.Compound
}

// SetCompoundDict attaches a compound dictionary used as a feature
// source. Must match the dictionary used during training.
func (t *POSTagger) SetCompoundDict(d *dictionary.Compound) {
	t.dict = d
}

func (t *POSTagger) extractor() *WindowExtractor {
	return &WindowExtractor{Config: t.Extractor, Lexicon: t.Lexicon, Dict: t.dict}
}

// Tag labels a tokenized sentence, returning one tag per token.
func (t *POSTagger) Tag(tokens []string) []string {
	state := NewPOSState(tokens, nil)
	comp := NewDecoder(t.extractor(), t.Model)
	for !state.Done() {
		comp.Process(state)
		state.Advance()
	}
	return state.Labels
}

// TagSentence labels a sentence in place, filling Tags.
func (t *POSTagger) TagSentence(sent *Sentence) {
	sent.Tags = t.Tag(sent.Tokens)
}

// TrainOptions holds the cutoffs and hyperparameters of a training run.
type TrainOptions struct {
	LabelCutoff             int
	FeatureCutoff           int
	DocumentFrequencyCutoff int
	DocumentBoundaryCutoff  int
	AmbiguityThreshold      float64
	Epochs                  int
	Bootstraps              int
	AdaGrad                 linear.AdaGradConfig
	Extractor               ExtractorConfig
}

// DefaultTrainOptions returns the standard training setup.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		LabelCutoff:             1,
		FeatureCutoff:           2,
		DocumentFrequencyCutoff: 2,
		DocumentBoundaryCutoff:  1000,
		AmbiguityThreshold:      0.4,
		Epochs:                  5,
		Bootstraps:              0,
		AdaGrad:                 linear.DefaultAdaGradConfig(),
		Extractor:               DefaultExtractorConfig(),
	}
}

// TrainPOSTagger trains a tagger on gold-annotated sentences. Round zero
// records instances over gold context; each bootstrap round re-records
// them over the previous round's own predictions and retrains from
// scratch, so the training data reflects the model's error distribution.
func TrainPOSTagger(sentences []Sentence, opts TrainOptions, dict *dictionary.Compound) (*POSTagger, error) {
	if len(sentences) == 0 {
		return nil, fmt.Errorf("tagger: no training sentences")
	}

	lexicon := CollectLexicon(sentences, opts)
	slog.Info("Lexicon frozen",
		"words", lexicon.WordCount(), "ambiguity_classes", len(lexicon.Ambiguity))

	var tg *POSTagger
	for round := 0; round <= opts.Bootstraps; round++ {
		model, err := trainRound(sentences, lexicon, opts, dict, tg, round)
		if err != nil {
			return nil, err
		}
		tg = &POSTagger{Model: model, Lexicon: lexicon, Extractor: opts.Extractor, dict: dict}
	}
	return tg, nil
}

// CollectLexicon counts word/tag pairs and document frequencies, then
// freezes the ambiguity classes. Sentences are chunked into pseudo
// documents of DocumentBoundaryCutoff sentences for frequency counting.
func CollectLexicon(sentences []Sentence, opts TrainOptions) *Lexicon {
	lexicon := NewLexicon()
	boundary := opts.DocumentBoundaryCutoff
	if boundary <= 0 {
		boundary = len(sentences)
	}
	seen := make(map[string]bool)
	for i, sent := range sentences {
		for j, token := range sent.Tokens {
			word := textutil.Simplify(token)
			lexicon.Count(word, sent.Tags[j])
			seen[word] = true
		}
		if (i+1)%boundary == 0 || i == len(sentences)-1 {
			lexicon.CountDocument(seen)
			seen = make(map[string]bool)
		}
	}
	lexicon.Freeze(opts.DocumentFrequencyCutoff, opts.AmbiguityThreshold)
	return lexicon
}

func trainRound(sentences []Sentence, lexicon *Lexicon, opts TrainOptions, dict *dictionary.Compound, prev *POSTagger, round int) (*linear.Model, error) {
	ext := &WindowExtractor{Config: opts.Extractor, Lexicon: lexicon, Dict: dict}

	var comp *Component
	model := linear.NewModel(false)
	if round == 0 {
		comp = NewTrainer(ext, model)
	} else {
		comp = NewBootstrapper(ext, prev.Model)
	}
	for _, sent := range sentences {
		state := NewPOSState(sent.Tokens, sent.Tags)
		for !state.Done() {
			comp.Process(state)
			state.Advance()
		}
	}

	model.AddInstances(comp.Instances())
	instances, err := model.Freeze(opts.LabelCutoff, opts.FeatureCutoff)
	if err != nil {
		return nil, fmt.Errorf("tagger: %w", err)
	}
	slog.Info("Vocabulary frozen",
		"round", round,
		"labels", model.LabelCount(),
		"features", model.FeatureCount(),
		"instances", len(instances),
		"dropped", model.DroppedInstances())

	// Fixed seed: identical runs must produce identical weights.
	rng := rand.New(rand.NewSource(11))
	rng.Shuffle(len(instances), func(i, j int) {
		instances[i], instances[j] = instances[j], instances[i]
	})

	trainer, err := linear.NewAdaGradTrainer(model.WeightVector(), opts.AdaGrad)
	if err != nil {
		return nil, fmt.Errorf("tagger: %w", err)
	}
	for epoch := 0; epoch < opts.Epochs; epoch++ {
		updated := trainer.Train(instances)
		slog.Debug("Epoch finished", "round", round, "epoch", epoch+1, "updates", updated)
	}
	trainer.Finalize()
	return model, nil
}
