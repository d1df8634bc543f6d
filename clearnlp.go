// Package clearnlp provides statistical part-of-speech tagging built on
// online-trained sparse linear models.
//
//	tg, _ := clearnlp.Load("model.json")
//	tags := tg.Tag([]string{"The", "dog", "barks"})
package clearnlp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rygbee/clearnlp/dictionary"
	"github.com/Rygbee/clearnlp/tagger"
)

// Tagger wraps a trained part-of-speech tagging model. Once loaded it is
// read-only and safe for concurrent use.
type Tagger struct {
	pt *tagger.POSTagger
}

// New loads the tagger from "model.json", searching the current directory
// and parent directories up to the module root (where go.mod lives).
func New() (*Tagger, error) {
	path, err := findModel("model.json")
	if err != nil {
		return nil, fmt.Errorf("clearnlp: %w", err)
	}
	return Load(path)
}

func findModel(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		// Stop at module root
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("model.json not found")
}

// Load loads a trained tagger from a model file.
func Load(path string) (*Tagger, error) {
	pt, err := tagger.LoadPOSTagger(path)
	if err != nil {
		return nil, fmt.Errorf("clearnlp: %w", err)
	}
	return &Tagger{pt: pt}, nil
}

// Save writes the tagger to a model file.
func (t *Tagger) Save(path string) error {
	if t.pt == nil {
		return fmt.Errorf("clearnlp: tagger not initialized")
	}
	if err := t.pt.Save(path); err != nil {
		return fmt.Errorf("clearnlp: %w", err)
	}
	return nil
}

// LoadCompoundDict attaches a compound dictionary resource to the tagger.
// The same resource must be attached for training and decoding.
func (t *Tagger) LoadCompoundDict(path string) error {
	d, err := dictionary.LoadCompound(path)
	if err != nil {
		return fmt.Errorf("clearnlp: %w", err)
	}
	t.pt.SetCompoundDict(d)
	return nil
}

// Tag labels a tokenized sentence, returning one tag per token.
func (t *Tagger) Tag(tokens []string) []string {
	return t.pt.Tag(tokens)
}
