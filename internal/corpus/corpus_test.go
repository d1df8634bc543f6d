package corpus

import (
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := "The\tDT\ndog\tNN\nbarks\tVB\n\nIt\tPRP\nsleeps\tVB\n"
	sentences, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(sentences) != 2 {
		t.Fatalf("len(sentences) = %d, want 2", len(sentences))
	}
	if !reflect.DeepEqual(sentences[0].Tokens, []string{"The", "dog", "barks"}) {
		t.Errorf("sentence 0 tokens = %v", sentences[0].Tokens)
	}
	if !reflect.DeepEqual(sentences[0].Tags, []string{"DT", "NN", "VB"}) {
		t.Errorf("sentence 0 tags = %v", sentences[0].Tags)
	}
	if !reflect.DeepEqual(sentences[1].Tokens, []string{"It", "sleeps"}) {
		t.Errorf("sentence 1 tokens = %v", sentences[1].Tokens)
	}
}

func TestReadNoTrailingBlankLine(t *testing.T) {
	sentences, err := Read(strings.NewReader("word\tNN"))
	if err != nil {
		t.Fatal(err)
	}
	if len(sentences) != 1 || len(sentences[0].Tokens) != 1 {
		t.Errorf("sentences = %+v, want one single-token sentence", sentences)
	}
}

func TestReadCarriageReturns(t *testing.T) {
	sentences, err := Read(strings.NewReader("word\tNN\r\n\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(sentences) != 1 || sentences[0].Tags[0] != "NN" {
		t.Errorf("sentences = %+v, want one NN token", sentences)
	}
}

func TestReadMalformedLine(t *testing.T) {
	for _, input := range []string{
		"word without tab\n",
		"word\t\n",
		"\tNN\n",
		"word\tNN\textra\n",
	} {
		if _, err := Read(strings.NewReader(input)); err == nil {
			t.Errorf("input %q: expected error", input)
		}
	}
}

func TestReadMalformedLineNumber(t *testing.T) {
	_, err := Read(strings.NewReader("ok\tNN\n\nbroken line\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name line 3", err)
	}
}

func TestReadRaw(t *testing.T) {
	input := "The dog barks\n\n  It   sleeps  \n"
	sentences, err := ReadRaw(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"The", "dog", "barks"}, {"It", "sleeps"}}
	if !reflect.DeepEqual(sentences, want) {
		t.Errorf("ReadRaw = %v, want %v", sentences, want)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("does-not-exist.tsv"); err == nil {
		t.Error("expected error for missing file")
	}
}
