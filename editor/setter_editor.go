package editor

import (
	"fmt"
	"io"
)

// SetterEditor is constructed empty; its SpellChecker arrives through
// SetSpellChecker after construction.
type SetterEditor struct {
	out          io.Writer
	spellChecker *SpellChecker
}

// NewSetterEditor returns an editor with no spell checker.
func NewSetterEditor(out io.Writer) *SetterEditor {
	return &SetterEditor{out: out}
}

// SetSpellChecker injects sc.
func (e *SetterEditor) SetSpellChecker(sc *SpellChecker) {
	_, _ = fmt.Fprintln(e.out, "Inside setSpellChecker.")
	e.spellChecker = sc
}

// SpellChecker returns the injected spell checker, or nil.
func (e *SetterEditor) SpellChecker() *SpellChecker { return e.spellChecker }

// SpellCheck announces itself and delegates to the spell checker.
func (e *SetterEditor) SpellCheck() error {
	_, _ = fmt.Fprintln(e.out, "Inside TextEditorSetterBasedDI.spellCheck().")
	if e.spellChecker == nil {
		return ErrNoSpellChecker
	}
	e.spellChecker.CheckSpelling()
	return nil
}
