package tagger

// Sentence is a tokenized sentence with optional gold tags.
type Sentence struct {
	Tokens []string
	Tags   []string
}

// POSState walks a sentence left to right, one labeling decision per
// token. Labels assigned at earlier positions are visible to feature
// extraction at later ones.
type POSState struct {
	Tokens []string
	Gold   []string
	Labels []string
	Index  int
}

// NewPOSState creates a state at the first token. Gold may be nil when
// decoding.
func NewPOSState(tokens, gold []string) *POSState {
	return &POSState{
		Tokens: tokens,
		Gold:   gold,
		Labels: make([]string, len(tokens)),
	}
}

// GoldLabel returns the annotated tag at the current position.
func (s *POSState) GoldLabel() string {
	if s.Gold == nil {
		return ""
	}
	return s.Gold[s.Index]
}

// SetLabel assigns the resolved tag at the current position.
func (s *POSState) SetLabel(label string) {
	s.Labels[s.Index] = label
}

// Word returns the token at the given offset from the current position.
func (s *POSState) Word(offset int) (string, bool) {
	i := s.Index + offset
	if i < 0 || i >= len(s.Tokens) {
		return "", false
	}
	return s.Tokens[i], true
}

// Label returns an already assigned tag at a negative offset from the
// current position.
func (s *POSState) Label(offset int) (string, bool) {
	i := s.Index + offset
	if offset >= 0 || i < 0 {
		return "", false
	}
	return s.Labels[i], true
}

// Advance moves to the next token and reports whether one exists.
func (s *POSState) Advance() bool {
	s.Index++
	return s.Index < len(s.Tokens)
}

// Done reports whether every token has been visited.
func (s *POSState) Done() bool {
	return s.Index >= len(s.Tokens)
}
