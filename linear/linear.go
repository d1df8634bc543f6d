// Package linear implements sparse multi-class linear models and the
// adaptive-gradient online learner that trains them.
package linear

// Alphabet maps between feature strings and dense integer IDs.
// IDs are assigned append-only and never renumbered.
type Alphabet struct {
	ToID  map[string]int `json:"to_id"`
	ToStr []string       `json:"to_str"`
}

// NewAlphabet creates an empty alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{
		ToID: make(map[string]int),
	}
}

// Add adds a string to the alphabet if not already present, returns its ID.
func (a *Alphabet) Add(s string) int {
	if id, ok := a.ToID[s]; ok {
		return id
	}
	id := len(a.ToStr)
	a.ToID[s] = id
	a.ToStr = append(a.ToStr, s)
	return id
}

// Get returns the ID for a string, or -1 if not found.
func (a *Alphabet) Get(s string) int {
	if id, ok := a.ToID[s]; ok {
		return id
	}
	return -1
}

// Size returns the number of entries.
func (a *Alphabet) Size() int {
	return len(a.ToStr)
}

// LabelMap is a bidirectional mapping between label strings and dense
// label indices. It is built during training and frozen for inference:
// index assignment is stable for the lifetime of a model.
type LabelMap struct {
	ToIndex map[string]int `json:"to_index"`
	Names   []string       `json:"names"`
}

// NewLabelMap creates an empty label map.
func NewLabelMap() *LabelMap {
	return &LabelMap{
		ToIndex: make(map[string]int),
	}
}

// Add inserts a label if not already present and returns its index.
func (m *LabelMap) Add(label string) int {
	if idx, ok := m.ToIndex[label]; ok {
		return idx
	}
	idx := len(m.Names)
	m.ToIndex[label] = idx
	m.Names = append(m.Names, label)
	return idx
}

// IndexOf returns the index for a label, or -1 if unknown.
func (m *LabelMap) IndexOf(label string) int {
	if idx, ok := m.ToIndex[label]; ok {
		return idx
	}
	return -1
}

// Label returns the label string at the given index.
func (m *LabelMap) Label(index int) string {
	return m.Names[index]
}

// Size returns the number of labels.
func (m *LabelMap) Size() int {
	return len(m.Names)
}

// LabelList returns all labels in index order.
func (m *LabelMap) LabelList() []string {
	return m.Names
}
