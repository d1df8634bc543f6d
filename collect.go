package clearnlp

import (
	"fmt"

	"github.com/Rygbee/clearnlp/internal/config"
	"github.com/Rygbee/clearnlp/internal/corpus"
	"github.com/Rygbee/clearnlp/linear"
	"github.com/Rygbee/clearnlp/tagger"
)

// CollectResult summarizes a feature-collection pass over a corpus.
type CollectResult struct {
	Sentences        int
	Instances        int
	Labels           int
	Features         int
	AmbiguityClasses int
}

// Collect runs a collection-mode pass over a tagged corpus: features are
// extracted for every position and counted, but no model is trained.
// Useful for sizing vocabularies before committing to a training run.
func Collect(corpusPath string, cfg *TrainConfig) (*CollectResult, error) {
	if cfg == nil {
		cfg = &TrainConfig{Config: config.Default()}
	}
	sentences, err := corpus.ReadFile(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("clearnlp: %w", err)
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("clearnlp: no sentences found in %s", corpusPath)
	}

	opts := trainOptions(cfg.Config)
	lexicon := tagger.CollectLexicon(sentences, opts)

	model := linear.NewModel(false)
	ext := &tagger.WindowExtractor{Config: opts.Extractor, Lexicon: lexicon}
	comp := tagger.NewCollector(ext, model)
	for _, sent := range sentences {
		state := tagger.NewPOSState(sent.Tokens, sent.Tags)
		for !state.Done() {
			comp.Process(state)
			state.Advance()
		}
	}

	instances, err := model.Freeze(opts.LabelCutoff, opts.FeatureCutoff)
	if err != nil {
		return nil, fmt.Errorf("clearnlp: %w", err)
	}
	return &CollectResult{
		Sentences:        len(sentences),
		Instances:        len(instances),
		Labels:           model.LabelCount(),
		Features:         model.FeatureCount(),
		AmbiguityClasses: len(lexicon.Ambiguity),
	}, nil
}
