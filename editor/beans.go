package editor

import (
	"io"

	"github.com/sghaida/texteditor/di"
)

// Bean names.
const (
	ConstructorEditorBean = "textEditorConstructorBasedDI"
	SetterEditorBean      = "textEditorSetterBasedDI"
	SpellCheckerBean      = "spellChecker"
)

// Register declares the demo beans on c, all writing to out.
//
// Registration order is constructor editor, setter editor, spell checker.
// On Refresh the constructor editor therefore pulls the spell checker into
// existence first, and the setter editor reuses the same instance.
func Register(c *di.Container, out io.Writer) error {
	if err := di.Provide(c, ConstructorEditorBean, func(c *di.Container) (*ConstructorEditor, error) {
		sc, err := di.Get[SpellChecker](c, SpellCheckerBean)
		if err != nil {
			return nil, err
		}
		return NewConstructorEditor(out, sc), nil
	}); err != nil {
		return err
	}

	if err := di.Provide(c, SetterEditorBean,
		func(*di.Container) (*SetterEditor, error) { return NewSetterEditor(out), nil },
		di.Inject(SpellCheckerBean, (*SetterEditor).SetSpellChecker),
	); err != nil {
		return err
	}

	return di.Provide(c, SpellCheckerBean, func(*di.Container) (*SpellChecker, error) {
		return NewSpellChecker(out), nil
	})
}
