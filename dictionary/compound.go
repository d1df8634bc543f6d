// Package dictionary provides static lexical resources.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Compound maps concatenated compound words to the cumulative character
// offsets at which each following token begins. Keys are matched exactly
// against lowercased words.
type Compound struct {
	splits map[string][]int
}

// NewCompound builds a dictionary from a resource listing one compound
// per line as whitespace-separated tokens. Any read error aborts
// construction; a partially built dictionary is never returned.
func NewCompound(r io.Reader) (*Compound, error) {
	splits := make(map[string][]int)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		offsets := make([]int, len(tokens)-1)
		var build strings.Builder
		for i, token := range tokens[:len(tokens)-1] {
			offsets[i] = build.Len() + len(token)
			build.WriteString(token)
		}
		build.WriteString(tokens[len(tokens)-1])
		splits[build.String()] = offsets
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	return &Compound{splits: splits}, nil
}

// LoadCompound builds a dictionary from a resource file.
func LoadCompound(path string) (*Compound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	defer f.Close()
	return NewCompound(f)
}

// Lookup returns the split offsets for a lowercased word.
func (c *Compound) Lookup(lower string) ([]int, bool) {
	offsets, ok := c.splits[lower]
	return offsets, ok
}

// Size returns the number of dictionary entries.
func (c *Compound) Size() int {
	return len(c.splits)
}
