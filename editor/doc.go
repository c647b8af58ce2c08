// Package editor holds the beans of the text editor demo: one spell checker
// shared by two editors, one wired through its constructor and one through a
// setter.
//
// Every bean writes a fixed diagnostic line to an injected io.Writer when it
// is constructed, injected or called, so the output shows the order in which
// the container builds and wires objects.
package editor
