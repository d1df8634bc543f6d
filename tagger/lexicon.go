package tagger

import (
	"sort"
	"strings"
)

// Lexicon holds corpus statistics gathered before training: per-word tag
// distributions and document frequencies. Freeze turns them into the
// ambiguity classes used as features.
type Lexicon struct {
	WordTags map[string]map[string]int `json:"word_tags"`
	DocFreq  map[string]int            `json:"doc_freq"`
	// Ambiguity maps a word to its frozen ambiguity class: the tags it
	// takes with sufficient relative frequency, most frequent first,
	// joined by "_".
	Ambiguity map[string]string `json:"ambiguity"`
}

// NewLexicon creates an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{
		WordTags: make(map[string]map[string]int),
		DocFreq:  make(map[string]int),
	}
}

// Count records one occurrence of word tagged as tag. Word is expected to
// be in simplified form.
func (l *Lexicon) Count(word, tag string) {
	tags, ok := l.WordTags[word]
	if !ok {
		tags = make(map[string]int)
		l.WordTags[word] = tags
	}
	tags[tag]++
}

// CountDocument records one document occurrence for each distinct word.
func (l *Lexicon) CountDocument(words map[string]bool) {
	for w := range words {
		l.DocFreq[w]++
	}
}

// Freeze builds the ambiguity classes. Words with document frequency
// below dfCutoff are excluded; within a word, tags whose relative
// frequency is below threshold are excluded.
func (l *Lexicon) Freeze(dfCutoff int, threshold float64) {
	l.Ambiguity = make(map[string]string)
	for word, tags := range l.WordTags {
		if l.DocFreq[word] < dfCutoff {
			continue
		}
		total := 0
		for _, n := range tags {
			total += n
		}
		kept := make([]string, 0, len(tags))
		for tag, n := range tags {
			if float64(n)/float64(total) >= threshold {
				kept = append(kept, tag)
			}
		}
		if len(kept) == 0 {
			continue
		}
		sort.Slice(kept, func(i, j int) bool {
			if tags[kept[i]] != tags[kept[j]] {
				return tags[kept[i]] > tags[kept[j]]
			}
			return kept[i] < kept[j]
		})
		l.Ambiguity[word] = strings.Join(kept, "_")
	}
}

// AmbiguityClass returns the frozen ambiguity class for a simplified word.
func (l *Lexicon) AmbiguityClass(word string) (string, bool) {
	class, ok := l.Ambiguity[word]
	return class, ok
}

// WordCount returns the number of distinct words counted.
func (l *Lexicon) WordCount() int {
	return len(l.WordTags)
}
