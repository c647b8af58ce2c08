// Package app is the composition root of the texteditor demo.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/sghaida/texteditor/di"
	"github.com/sghaida/texteditor/editor"
	"github.com/sghaida/texteditor/internal/config"
	"github.com/sghaida/texteditor/internal/logger"
)

// Run builds the container, looks up both editors and runs a spell check on
// each: the setter-injected editor first, then the constructor-injected one.
// Diagnostic lines go to out; lifecycle messages go to log.
func Run(cfg config.Config, out io.Writer, log *logger.Logger) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Info("env=%s", cfg.Env)

	c := di.New(di.WithCreated(func(name string) {
		log.Debug("bean %q created", name)
	}))
	if err := editor.Register(c, out); err != nil {
		return fmt.Errorf("register beans: %w", err)
	}
	log.Debug("registered beans %v", c.Names())

	defer func() {
		log.Debug("closing container")
		if cerr := c.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close container: %w", cerr))
		}
	}()

	if err := c.Refresh(); err != nil {
		return fmt.Errorf("refresh container: %w", err)
	}

	setter, err := di.Lookup[editor.SetterEditor](c)
	if err != nil {
		return err
	}
	ctor, err := di.Lookup[editor.ConstructorEditor](c)
	if err != nil {
		return err
	}

	if err := setter.SpellCheck(); err != nil {
		return err
	}
	return ctor.SpellCheck()
}
