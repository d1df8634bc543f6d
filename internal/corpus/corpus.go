// Package corpus reads token/tag training data.
//
// The format is one token per line as "token<TAB>tag", with a blank line
// ending each sentence.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rygbee/clearnlp/tagger"
)

// Read parses tagged sentences from a reader. A malformed line is a
// fatal error: partially parsed corpora are never returned.
func Read(r io.Reader) ([]tagger.Sentence, error) {
	var sentences []tagger.Sentence
	var current tagger.Sentence

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if len(current.Tokens) > 0 {
				sentences = append(sentences, current)
				current = tagger.Sentence{}
			}
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("corpus: line %d: want \"token<TAB>tag\", got %q", lineNo, line)
		}
		current.Tokens = append(current.Tokens, fields[0])
		current.Tags = append(current.Tags, fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	if len(current.Tokens) > 0 {
		sentences = append(sentences, current)
	}
	return sentences, nil
}

// ReadFile parses tagged sentences from a file.
func ReadFile(path string) ([]tagger.Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// ReadRaw parses untagged input: one whitespace-tokenized sentence per
// line, empty lines skipped.
func ReadRaw(r io.Reader) ([][]string, error) {
	var sentences [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) > 0 {
			sentences = append(sentences, tokens)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	return sentences, nil
}

// ReadRawFile parses untagged sentences from a file.
func ReadRawFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	defer f.Close()
	return ReadRaw(f)
}
