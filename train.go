package clearnlp

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Rygbee/clearnlp/dictionary"
	"github.com/Rygbee/clearnlp/internal/config"
	"github.com/Rygbee/clearnlp/internal/corpus"
	"github.com/Rygbee/clearnlp/tagger"
)

// TrainConfig holds configuration for training.
type TrainConfig struct {
	Config       config.Config
	CompoundDict string // optional dictionary resource path
}

// EvalResult holds held-out evaluation results.
type EvalResult struct {
	TokenAccuracy    float64
	SentenceAccuracy float64
	TokenCorrect     int
	TokenTotal       int
	SentenceCorrect  int
	SentenceTotal    int
}

// Train trains a tagger on a tagged corpus file.
func Train(corpusPath string, cfg *TrainConfig) (*Tagger, error) {
	if cfg == nil {
		cfg = &TrainConfig{Config: config.Default()}
	}
	if err := cfg.Config.Validate(); err != nil {
		return nil, fmt.Errorf("clearnlp: %w", err)
	}

	sentences, err := corpus.ReadFile(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("clearnlp: %w", err)
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("clearnlp: no sentences found in %s", corpusPath)
	}

	var dict *dictionary.Compound
	if cfg.CompoundDict != "" {
		dict, err = dictionary.LoadCompound(cfg.CompoundDict)
		if err != nil {
			return nil, fmt.Errorf("clearnlp: %w", err)
		}
	}

	pt, err := tagger.TrainPOSTagger(sentences, trainOptions(cfg.Config), dict)
	if err != nil {
		return nil, fmt.Errorf("clearnlp: %w", err)
	}
	return &Tagger{pt: pt}, nil
}

func trainOptions(cfg config.Config) tagger.TrainOptions {
	opts := tagger.DefaultTrainOptions()
	opts.LabelCutoff = cfg.Cutoffs.Label
	opts.FeatureCutoff = cfg.Cutoffs.Feature
	opts.DocumentFrequencyCutoff = cfg.Cutoffs.DocumentFrequency
	opts.DocumentBoundaryCutoff = cfg.Cutoffs.DocumentBoundary
	opts.AmbiguityThreshold = cfg.Cutoffs.AmbiguityThreshold
	opts.Epochs = cfg.Trainer.Epochs
	opts.Bootstraps = cfg.Trainer.Bootstraps
	opts.AdaGrad.Alpha = cfg.Trainer.Alpha
	opts.AdaGrad.Rho = cfg.Trainer.Rho
	opts.AdaGrad.Average = cfg.Trainer.Average
	return opts
}

// Evaluate tags a held-out corpus and scores the result against its gold
// tags. Sentences are processed in parallel: the model is read-only here,
// so concurrent prediction needs no locking.
func (t *Tagger) Evaluate(corpusPath string) (*EvalResult, error) {
	sentences, err := corpus.ReadFile(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("clearnlp: %w", err)
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("clearnlp: no sentences found in %s", corpusPath)
	}

	type sentScore struct {
		correct, total int
	}
	scores := make([]sentScore, len(sentences))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sent := range sentences {
		i, sent := i, sent
		g.Go(func() error {
			tags := t.pt.Tag(sent.Tokens)
			s := sentScore{total: len(tags)}
			for j, tag := range tags {
				if tag == sent.Tags[j] {
					s.correct++
				}
			}
			scores[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("clearnlp: %w", err)
	}

	result := &EvalResult{SentenceTotal: len(sentences)}
	for _, s := range scores {
		result.TokenCorrect += s.correct
		result.TokenTotal += s.total
		if s.correct == s.total {
			result.SentenceCorrect++
		}
	}
	if result.TokenTotal > 0 {
		result.TokenAccuracy = float64(result.TokenCorrect) / float64(result.TokenTotal)
	}
	if result.SentenceTotal > 0 {
		result.SentenceAccuracy = float64(result.SentenceCorrect) / float64(result.SentenceTotal)
	}
	return result, nil
}
