// Package complete implements the completion-matching core of an interactive
// line editor. Given the text already typed and a cursor position, it collects
// candidates from an ordered chain of pluggable generators, reconciles them
// under a consistent set of path and word semantics, and drives the two
// completion actions a user can invoke: inserting every viable candidate, and
// completing to the longest unambiguous prefix.
//
// The package is pure data plumbing: it performs no I/O and has no error
// channel. An absence of candidates always degenerates to a no-op on the line
// buffer, never a fault. Concrete candidate sources live in the completers
// subpackage and in package luagen.
package complete
