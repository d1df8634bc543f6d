package clearnlp

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Rygbee/clearnlp/internal/config"
)

const tinyCorpus = "The\tDT\ndog\tNN\nbarks\tVB\n\n" +
	"The\tDT\ncat\tNN\nsleeps\tVB\n\n" +
	"A\tDT\ndog\tNN\nsleeps\tVB\n\n" +
	"The\tDT\ncat\tNN\nbarks\tVB\n"

func writeCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.tsv")
	if err := os.WriteFile(path, []byte(tinyCorpus), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func tinyConfig() *TrainConfig {
	cfg := config.Default()
	cfg.Cutoffs.Feature = 1
	cfg.Cutoffs.DocumentFrequency = 1
	cfg.Trainer.Alpha = 0.1
	cfg.Trainer.Epochs = 30
	cfg.Trainer.Average = false
	return &TrainConfig{Config: cfg}
}

func TestTrainSaveLoadTag(t *testing.T) {
	tg, err := Train(writeCorpus(t), tinyConfig())
	if err != nil {
		t.Fatal(err)
	}

	tokens := []string{"The", "dog", "barks"}
	want := []string{"DT", "NN", "VB"}
	if got := tg.Tag(tokens); !reflect.DeepEqual(got, want) {
		t.Errorf("Tag = %v, want %v", got, want)
	}

	path := filepath.Join(t.TempDir(), "model.json")
	if err := tg.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.Tag(tokens); !reflect.DeepEqual(got, want) {
		t.Errorf("Tag after reload = %v, want %v", got, want)
	}
}

func TestTrainInvalidConfig(t *testing.T) {
	cfg := tinyConfig()
	cfg.Config.Trainer.Rho = -1
	if _, err := Train(writeCorpus(t), cfg); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestTrainMissingCorpus(t *testing.T) {
	if _, err := Train(filepath.Join(t.TempDir(), "absent.tsv"), nil); err == nil {
		t.Error("expected error for missing corpus file")
	}
}

func TestEvaluate(t *testing.T) {
	path := writeCorpus(t)
	tg, err := Train(path, tinyConfig())
	if err != nil {
		t.Fatal(err)
	}

	res, err := tg.Evaluate(path)
	if err != nil {
		t.Fatal(err)
	}
	if res.TokenTotal != 12 || res.SentenceTotal != 4 {
		t.Errorf("totals = %d tokens, %d sentences; want 12, 4", res.TokenTotal, res.SentenceTotal)
	}
	// Evaluating on the training data itself: a converged model scores 1.0.
	if res.TokenAccuracy != 1.0 || res.SentenceAccuracy != 1.0 {
		t.Errorf("accuracy = %g/%g, want 1.0/1.0", res.TokenAccuracy, res.SentenceAccuracy)
	}
	if res.TokenCorrect != res.TokenTotal || res.SentenceCorrect != res.SentenceTotal {
		t.Errorf("correct counts inconsistent: %+v", res)
	}
}

func TestCollect(t *testing.T) {
	res, err := Collect(writeCorpus(t), tinyConfig())
	if err != nil {
		t.Fatal(err)
	}
	if res.Sentences != 4 {
		t.Errorf("Sentences = %d, want 4", res.Sentences)
	}
	if res.Instances != 12 {
		t.Errorf("Instances = %d, want 12", res.Instances)
	}
	if res.Labels != 3 {
		t.Errorf("Labels = %d, want 3", res.Labels)
	}
	if res.Features == 0 {
		t.Error("Features = 0, want > 0")
	}
}

func TestTagWithCompoundDict(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "compounds.txt")
	if err := os.WriteFile(dictPath, []byte("can not\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tg, err := Train(writeCorpus(t), tinyConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := tg.LoadCompoundDict(dictPath); err != nil {
		t.Fatal(err)
	}
	// The dictionary only adds features; tagging still works end to end.
	if got := tg.Tag([]string{"The", "cat", "sleeps"}); len(got) != 3 {
		t.Errorf("Tag returned %d labels, want 3", len(got))
	}
}
