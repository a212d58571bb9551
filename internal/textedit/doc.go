// Package textedit implements the pure line-editing operations behind the
// extended text input: word deletion, kill to start/end of line, cursor to
// start/end of line and forward character delete.
//
// Every operation takes a State (text plus cursor) and returns a new State.
// Cursor offsets count runes, not bytes, so "héllo" has five positions after
// the first rune. Nothing here touches the terminal; the ui/extendededit
// package applies the results to a live field.
package textedit
