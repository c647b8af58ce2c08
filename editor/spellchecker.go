package editor

import (
	"fmt"
	"io"
)

// SpellChecker is the shared collaborator injected into both editors.
type SpellChecker struct {
	out io.Writer
}

// NewSpellChecker constructs a SpellChecker and announces it on out.
func NewSpellChecker(out io.Writer) *SpellChecker {
	_, _ = fmt.Fprintln(out, "Inside SpellChecker constructor.")
	return &SpellChecker{out: out}
}

// CheckSpelling reports that a spell check ran.
func (s *SpellChecker) CheckSpelling() {
	_, _ = fmt.Fprintln(s.out, "Inside checkSpelling.")
}
