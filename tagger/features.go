package tagger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rygbee/clearnlp/dictionary"
	"github.com/Rygbee/clearnlp/internal/textutil"
	"github.com/Rygbee/clearnlp/linear"
)

// ExtractorConfig describes the feature template of the window extractor.
// It is serialized with the model so decode-time extraction matches
// train-time extraction exactly.
type ExtractorConfig struct {
	Window       int  `json:"window"`         // context words on each side
	MaxAffix     int  `json:"max_affix"`      // longest prefix/suffix length
	UsePrevLabel bool `json:"use_prev_label"` // previously assigned tag features
}

// DefaultExtractorConfig returns the standard tagging template.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Window:       2,
		MaxAffix:     3,
		UsePrevLabel: true,
	}
}

// WindowExtractor derives features from a window around the current
// token: surrounding word forms, affixes, shape, previously assigned
// tags, ambiguity classes, and compound dictionary hits.
type WindowExtractor struct {
	Config  ExtractorConfig
	Lexicon *Lexicon
	Dict    *dictionary.Compound
}

// Extract implements the Extractor interface over POS states.
func (e *WindowExtractor) Extract(st State) *linear.StringFeatureVector {
	v := linear.NewStringFeatureVector()
	s, ok := st.(*POSState)
	if !ok {
		return v
	}

	word, _ := s.Word(0)
	simple := textutil.Simplify(word)

	for off := -e.Config.Window; off <= e.Config.Window; off++ {
		if w, ok := s.Word(off); ok {
			v.Add(fmt.Sprintf("w%+d=%s", off, textutil.Simplify(w)))
		}
	}
	if prev, ok := s.Word(-1); ok {
		v.Add("w-1,0=" + textutil.Simplify(prev) + "|" + simple)
	}

	for n := 1; n <= e.Config.MaxAffix; n++ {
		v.Add(fmt.Sprintf("sf%d=%s", n, textutil.Suffix(simple, n)))
		v.Add(fmt.Sprintf("pf%d=%s", n, textutil.Prefix(simple, n)))
	}

	v.Add("sh=" + textutil.Shape(word))
	if textutil.HasDigit(word) {
		v.Add("dg")
	}
	if textutil.HasUpper(word) && s.Index > 0 {
		v.Add("up")
	}

	if e.Config.UsePrevLabel {
		t1, ok1 := s.Label(-1)
		if ok1 {
			v.Add("t-1=" + t1)
		}
		if t2, ok := s.Label(-2); ok {
			v.Add("t-2=" + t2)
			if ok1 {
				v.Add("t-2,-1=" + t2 + "|" + t1)
			}
		}
	}

	if e.Lexicon != nil {
		if class, ok := e.Lexicon.AmbiguityClass(simple); ok {
			v.Add("ac=" + class)
		}
	}
	if e.Dict != nil {
		if offsets, ok := e.Dict.Lookup(strings.ToLower(word)); ok {
			v.Add("cmp=" + strconv.Itoa(len(offsets)+1))
		}
	}

	v.Add("b")
	return v
}
