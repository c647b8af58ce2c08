package editor

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoSpellChecker is returned by SpellCheck when the editor was never wired.
var ErrNoSpellChecker = errors.New("editor: spell checker not wired")

// ConstructorEditor receives its SpellChecker through the constructor.
type ConstructorEditor struct {
	out          io.Writer
	spellChecker *SpellChecker
}

// NewConstructorEditor wires sc at construction time.
func NewConstructorEditor(out io.Writer, sc *SpellChecker) *ConstructorEditor {
	return &ConstructorEditor{out: out, spellChecker: sc}
}

// SpellCheck announces itself and delegates to the spell checker.
func (e *ConstructorEditor) SpellCheck() error {
	_, _ = fmt.Fprintln(e.out, "Inside TextEditorConstructorBasedDI.spellCheck().")
	if e.spellChecker == nil {
		return ErrNoSpellChecker
	}
	e.spellChecker.CheckSpelling()
	return nil
}
