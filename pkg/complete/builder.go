package complete

// Builder accumulates the candidates of one generator invocation. It is
// append-only and preserves insertion order (duplicates allowed). The first
// stored match fixes whether the set is path-like; later matches of the other
// class are silently dropped, so one completion menu never mixes path and
// plain-word semantics. A generator can force the class deterministically by
// adding a sentinel match before its main loop.
//
// A Builder is owned by the currently running generator for the duration of
// one Generate call, then read by the engine. It never outlives a completion
// request.
type Builder struct {
	matches        []Match
	pathlike       bool
	pathlikeSet    bool
	prefixIncluded bool
}

// NewBuilder returns an empty builder with prefix-included unset.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add stores m unless its path-likeness conflicts with the class fixed by the
// first stored match, in which case m is dropped. It reports whether m was
// stored.
func (b *Builder) Add(m Match) bool {
	pathlike := m.Kind.IsPathlike()
	if !b.pathlikeSet {
		b.pathlike = pathlike
		b.pathlikeSet = true
	} else if b.pathlike != pathlike {
		return false
	}
	b.matches = append(b.matches, m)
	return true
}

// SetPrefixIncluded records whether candidate text already embeds the typed
// text before the end word's last separator. Last write wins.
func (b *Builder) SetPrefixIncluded(included bool) {
	b.prefixIncluded = included
}

// Matches returns the stored candidates in insertion order. The returned
// slice is a copy; the builder itself has no removal operation.
func (b *Builder) Matches() []Match {
	out := make([]Match, len(b.matches))
	copy(out, b.matches)
	return out
}

// Len returns the number of stored candidates.
func (b *Builder) Len() int {
	return len(b.matches)
}

// PrefixIncluded reports the flag set by SetPrefixIncluded (false by default).
func (b *Builder) PrefixIncluded() bool {
	return b.prefixIncluded
}

// builderSnapshot captures the observable state of a builder so the chain can
// roll back around a generator that declines the context.
type builderSnapshot struct {
	n              int
	pathlike       bool
	pathlikeSet    bool
	prefixIncluded bool
}

func (b *Builder) snapshot() builderSnapshot {
	return builderSnapshot{
		n:              len(b.matches),
		pathlike:       b.pathlike,
		pathlikeSet:    b.pathlikeSet,
		prefixIncluded: b.prefixIncluded,
	}
}

func (b *Builder) restore(s builderSnapshot) {
	b.matches = b.matches[:s.n]
	b.pathlike = s.pathlike
	b.pathlikeSet = s.pathlikeSet
	b.prefixIncluded = s.prefixIncluded
}
