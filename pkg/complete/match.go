package complete

// MatchType classifies a candidate completion. The classification decides how
// the engine relates candidate text to the typed end word: path-like
// candidates get separator-aware display handling, plain words do not.
type MatchType int

const (
	// MatchWord is a plain word candidate with no path semantics.
	MatchWord MatchType = iota
	// MatchFile is a file path candidate.
	MatchFile
	// MatchDir is a directory path candidate. Completing one appends a
	// separator so a further completion step can descend into it.
	MatchDir
)

// IsPathlike reports whether the type carries path semantics.
func (t MatchType) IsPathlike() bool {
	return t == MatchFile || t == MatchDir
}

// String returns the lowercase name of the type.
func (t MatchType) String() string {
	switch t {
	case MatchFile:
		return "file"
	case MatchDir:
		return "dir"
	default:
		return "word"
	}
}

// Match is one candidate completion produced by a generator. Text is opaque:
// whether it embeds the typed directory part is governed by the owning
// builder's prefix-included flag, never inferred from the text itself.
type Match struct {
	Text string
	Kind MatchType
}
