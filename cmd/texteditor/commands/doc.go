// Package commands defines the texteditor CLI.
//
// The root command takes no arguments. It loads configuration, builds the
// bean container, and runs one spell check through each editor, printing
// the diagnostic lines to stdout.
//
// Flags
//
//   - --config   YAML file with env and verbose settings
//   - --verbose  log container lifecycle to stderr
package commands
