package tagger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Rygbee/clearnlp/linear"
)

// Bundle is the serialized form of a trained tagger: the feature
// extractor configuration, the lexicons, then the models, in that order.
type Bundle struct {
	Extractor ExtractorConfig `json:"extractor"`
	Lexicon   *Lexicon        `json:"lexicon"`
	Models    []*linear.Model `json:"models"`
}

// Save writes the tagger to a model file.
func (t *POSTagger) Save(path string) error {
	bundle := Bundle{
		Extractor: t.Extractor,
		Lexicon:   t.Lexicon,
		Models:    []*linear.Model{t.Model},
	}
	data, err := json.MarshalIndent(&bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("tagger: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPOSTagger reads a tagger from a model file. Any I/O or decode
// failure aborts the load; a partially initialized tagger is never
// returned.
func LoadPOSTagger(path string) (*POSTagger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tagger: %w", err)
	}
	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("tagger: %w", err)
	}
	if len(bundle.Models) == 0 || bundle.Models[0] == nil {
		return nil, fmt.Errorf("tagger: model file %s contains no models", path)
	}
	if bundle.Models[0].WeightVector() == nil {
		return nil, fmt.Errorf("tagger: model file %s has no weights", path)
	}
	return &POSTagger{
		Model:     bundle.Models[0],
		Lexicon:   bundle.Lexicon,
		Extractor: bundle.Extractor,
	}, nil
}
