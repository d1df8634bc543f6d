package tagger

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Rygbee/clearnlp/dictionary"
)

func trainSentences() []Sentence {
	return []Sentence{
		{Tokens: []string{"the", "dog", "barks"}, Tags: []string{"DT", "NN", "VB"}},
		{Tokens: []string{"the", "cat", "sleeps"}, Tags: []string{"DT", "NN", "VB"}},
		{Tokens: []string{"a", "dog", "sleeps"}, Tags: []string{"DT", "NN", "VB"}},
		{Tokens: []string{"the", "cat", "barks"}, Tags: []string{"DT", "NN", "VB"}},
	}
}

func testOptions() TrainOptions {
	opts := DefaultTrainOptions()
	opts.FeatureCutoff = 1
	opts.DocumentFrequencyCutoff = 1
	opts.Epochs = 30
	opts.AdaGrad.Alpha = 0.1
	opts.AdaGrad.Average = false
	return opts
}

func TestLexiconAmbiguityClasses(t *testing.T) {
	lex := NewLexicon()
	lex.Count("can", "MD")
	lex.Count("can", "MD")
	lex.Count("can", "MD")
	lex.Count("can", "NN")
	lex.CountDocument(map[string]bool{"can": true})
	lex.Freeze(1, 0.4)

	// MD occurs at 0.75, NN at 0.25: only MD clears the threshold.
	class, ok := lex.AmbiguityClass("can")
	if !ok || class != "MD" {
		t.Errorf("AmbiguityClass(can) = %q, %v; want MD, true", class, ok)
	}

	lex.Freeze(1, 0.2)
	class, _ = lex.AmbiguityClass("can")
	if class != "MD_NN" {
		t.Errorf("AmbiguityClass(can) at 0.2 = %q, want MD_NN", class)
	}

	// Document frequency cutoff excludes the word entirely.
	lex.Freeze(2, 0.2)
	if _, ok := lex.AmbiguityClass("can"); ok {
		t.Error("word below document frequency cutoff kept an ambiguity class")
	}
}

func TestWindowExtractorIdenticalAcrossModes(t *testing.T) {
	ext := &WindowExtractor{Config: DefaultExtractorConfig(), Lexicon: NewLexicon()}
	gold := NewPOSState([]string{"the", "dog"}, []string{"DT", "NN"})
	plain := NewPOSState([]string{"the", "dog"}, nil)

	a := ext.Extract(gold)
	b := ext.Extract(plain)
	if !reflect.DeepEqual(a.Features, b.Features) {
		t.Errorf("features differ between gold and plain states:\n%v\n%v", a.Features, b.Features)
	}
}

func TestWindowExtractorPrevLabel(t *testing.T) {
	ext := &WindowExtractor{Config: DefaultExtractorConfig()}
	state := NewPOSState([]string{"the", "dog"}, nil)
	state.SetLabel("DT")
	state.Advance()

	v := ext.Extract(state)
	found := false
	for _, f := range v.Features {
		if f == "t-1=DT" {
			found = true
		}
	}
	if !found {
		t.Errorf("features %v missing t-1=DT", v.Features)
	}
}

func TestWindowExtractorCompoundFeature(t *testing.T) {
	dict, err := dictionary.NewCompound(strings.NewReader("can not\n"))
	if err != nil {
		t.Fatal(err)
	}
	ext := &WindowExtractor{Config: DefaultExtractorConfig(), Dict: dict}
	state := NewPOSState([]string{"cannot"}, nil)

	v := ext.Extract(state)
	found := false
	for _, f := range v.Features {
		if f == "cmp=2" {
			found = true
		}
	}
	if !found {
		t.Errorf("features %v missing cmp=2", v.Features)
	}
}

func TestTrainPOSTaggerTagsTrainingData(t *testing.T) {
	tg, err := TrainPOSTagger(trainSentences(), testOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, sent := range trainSentences() {
		got := tg.Tag(sent.Tokens)
		if !reflect.DeepEqual(got, sent.Tags) {
			t.Errorf("Tag(%v) = %v, want %v", sent.Tokens, got, sent.Tags)
		}
	}

	// A recombination of seen words keeps the per-position tags.
	got := tg.Tag([]string{"the", "dog", "sleeps"})
	if !reflect.DeepEqual(got, []string{"DT", "NN", "VB"}) {
		t.Errorf("Tag recombination = %v, want [DT NN VB]", got)
	}
}

func TestTrainPOSTaggerBootstrap(t *testing.T) {
	opts := testOptions()
	opts.Bootstraps = 1
	tg, err := TrainPOSTagger(trainSentences(), opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := tg.Tag([]string{"the", "dog", "barks"})
	if !reflect.DeepEqual(got, []string{"DT", "NN", "VB"}) {
		t.Errorf("bootstrap-trained Tag = %v, want [DT NN VB]", got)
	}
}

func TestTrainPOSTaggerEmptyCorpus(t *testing.T) {
	if _, err := TrainPOSTagger(nil, testOptions(), nil); err == nil {
		t.Error("expected error for empty corpus")
	}
}

func TestTaggerSaveLoadRoundTrip(t *testing.T) {
	tg, err := TrainPOSTagger(trainSentences(), testOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}

	tokens := []string{"the", "cat", "barks"}
	before := tg.Tag(tokens)

	path := filepath.Join(t.TempDir(), "model.json")
	if err := tg.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadPOSTagger(path)
	if err != nil {
		t.Fatal(err)
	}

	after := loaded.Tag(tokens)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("tags differ after reload: %v vs %v", before, after)
	}

	// Scores must survive the round trip exactly, not just the argmax.
	ext := tg.extractor()
	state := NewPOSState(tokens, nil)
	x1 := tg.Model.ToSparseVector(ext.Extract(state))
	x2 := loaded.Model.ToSparseVector(loaded.extractor().Extract(state))
	p1 := tg.Model.PredictAll(x1)
	p2 := loaded.Model.PredictAll(x2)
	if !reflect.DeepEqual(p1, p2) {
		t.Errorf("ranked predictions differ after reload:\n%v\n%v", p1, p2)
	}
}

func TestLoadPOSTaggerRejectsEmptyBundle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(path, []byte(`{"extractor":{},"lexicon":null,"models":[]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPOSTagger(path); err == nil {
		t.Error("expected error for bundle without models")
	}
}
