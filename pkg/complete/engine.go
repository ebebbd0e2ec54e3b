package complete

import "strings"

// DefaultSeparator is appended to directory candidates when neither the typed
// end word nor the engine configuration supplies a separator.
const DefaultSeparator byte = '/'

// Buffer is the mutable line the engine acts on. It is owned by the
// line-editing layer; the engine only needs the two mutation primitives. Both
// must leave the cursor at the end of the inserted text.
type Buffer interface {
	Text() string
	Pos() int
	// ReplaceSpan replaces the byte span [start, end) with text.
	ReplaceSpan(start, end int, text string)
	// SpliceAt inserts text at byte offset pos.
	SpliceAt(pos int, text string)
}

// Engine applies one of the two completion actions to a line buffer, using
// the frozen builder a chain run produced. Both actions are total: zero
// viable candidates is a no-op, never an error.
type Engine struct {
	defaultSep byte
}

// NewEngine returns an engine that uses defaultSep for directory candidates
// when the typed end word contains no separator. Zero means DefaultSeparator.
func NewEngine(defaultSep byte) *Engine {
	if defaultSep == 0 {
		defaultSep = DefaultSeparator
	}
	return &Engine{defaultSep: defaultSep}
}

// viableMatch pairs a candidate's filter key (the raw match text, used for
// viability and common-prefix computation) with its display token (what
// insertion writes into the line).
type viableMatch struct {
	key     string
	display string
}

// viable filters b's candidates against the end word. When the builder's
// prefix-included flag is set, a candidate is viable iff its text starts with
// the full end word and displays unchanged. Otherwise viability is against
// the basename, the display token re-attaches the typed directory part, and
// directory candidates get a trailing separator (the one typed, or the
// configured default) marking them navigable. Candidate order is preserved.
func (e *Engine) viable(ls *LineState, b *Builder) []viableMatch {
	full := ls.EndWord().Text
	base := ls.EndWordBasename()
	dir := ls.EndWordDirpart()
	sep := ls.endSeparator()
	if sep == 0 {
		sep = e.defaultSep
	}

	var out []viableMatch
	for _, m := range b.Matches() {
		if b.PrefixIncluded() {
			if strings.HasPrefix(m.Text, full) {
				out = append(out, viableMatch{key: m.Text, display: m.Text})
			}
			continue
		}
		if !strings.HasPrefix(m.Text, base) {
			continue
		}
		display := dir + m.Text
		if m.Kind == MatchDir {
			display += string(sep)
		}
		out = append(out, viableMatch{key: m.Text, display: display})
	}
	return out
}

// Viable returns the display tokens of the currently viable candidates in
// candidate order, without mutating anything. Intended for menu rendering.
func (e *Engine) Viable(ls *LineState, b *Builder) []string {
	vm := e.viable(ls, b)
	if len(vm) == 0 {
		return nil
	}
	tokens := make([]string, len(vm))
	for i, m := range vm {
		tokens[i] = m.display
	}
	return tokens
}

// InsertAll replaces the end word with every viable candidate's display
// token, joined by single spaces and followed by one trailing space. The
// cursor ends up after the trailing space.
func (e *Engine) InsertAll(ls *LineState, b *Builder, buf Buffer) {
	vm := e.viable(ls, b)
	if len(vm) == 0 {
		return
	}
	tokens := make([]string, len(vm))
	for i, m := range vm {
		tokens[i] = m.display
	}
	buf.ReplaceSpan(ls.EndWord().Start, ls.Cursor(), strings.Join(tokens, " ")+" ")
}

// Complete advances the end word to the longest byte-wise prefix shared by
// every viable candidate's filter key, splicing only the not-yet-typed suffix
// at the cursor. With exactly one viable candidate it completes fully: the
// end word becomes the candidate's display token followed by a trailing
// space, which makes the fast path line-identical to InsertAll on a single
// candidate.
func (e *Engine) Complete(ls *LineState, b *Builder, buf Buffer) {
	vm := e.viable(ls, b)
	switch len(vm) {
	case 0:
		return
	case 1:
		buf.ReplaceSpan(ls.EndWord().Start, ls.Cursor(), vm[0].display+" ")
		return
	}

	prefix := vm[0].key
	for _, m := range vm[1:] {
		prefix = commonPrefix(prefix, m.key)
	}

	// Every key starts with the typed portion, so the shared prefix does too.
	typed := ls.EndWordBasename()
	if b.PrefixIncluded() {
		typed = ls.EndWord().Text
	}
	suffix := strings.TrimPrefix(prefix, typed)
	if suffix == "" {
		return
	}
	buf.SpliceAt(ls.Cursor(), suffix)
}

// commonPrefix returns the longest byte-wise prefix shared by a and b.
func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
