// Package texteditor demonstrates constructor and setter dependency injection
// with a small explicit bean container.
//
// A spell checker is shared by two text editors. One editor receives it as a
// constructor argument, the other through a setter called after
// construction. Each bean prints a line when it is built, injected or used,
// so running the demo shows the order in which the container wires objects.
//
// See subpackages:
//   - di: the generic singleton container (Provide, Inject, Get, Lookup)
//   - editor: the spell checker and the two editors, plus their registration
//   - internal/app: the composition root run by the CLI
//   - cmd/texteditor: the CLI entry point
//
// Running:
//
//	go run ./cmd/texteditor
package texteditor
