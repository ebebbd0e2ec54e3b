package completers

import (
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/sewbacca/clink/pkg/complete"
)

// WordListGenerator completes arguments of registered commands from fixed
// word lists, compspec-style: "git completes with add/commit/push". It claims
// the context when the line's first word has a registered list and the cursor
// is past it.
type WordListGenerator struct {
	lists map[string][]string
}

// NewWordListGenerator creates an empty registry.
func NewWordListGenerator() *WordListGenerator {
	return &WordListGenerator{
		lists: make(map[string][]string),
	}
}

// Register adds or replaces the word list for command. Duplicates are
// dropped, registration order kept.
func (g *WordListGenerator) Register(command string, words []string) {
	g.lists[command] = lo.Uniq(words)
}

// Unregister removes the word list for command.
func (g *WordListGenerator) Unregister(command string) {
	delete(g.lists, command)
}

// Lookup returns the registered word list for command.
func (g *WordListGenerator) Lookup(command string) ([]string, bool) {
	words, ok := g.lists[command]
	return words, ok
}

// Generate implements complete.Generator. Candidates are added best fuzzy
// rank first: insertion order is the only ranking the engine honors, so a
// generator that wants a ranked menu must order before adding.
func (g *WordListGenerator) Generate(ls *complete.LineState, b *complete.Builder) bool {
	if ls.WordCount() == 0 {
		return false
	}
	first := ls.Word(0)
	if ls.Cursor() <= first.End {
		// Still completing the command itself.
		return false
	}
	words, ok := g.lists[first.Text]
	if !ok {
		return false
	}

	for _, w := range rankWords(words, ls.EndWord().Text) {
		b.Add(complete.Match{Text: w, Kind: complete.MatchWord})
	}
	return true
}

// rankWords orders words by fuzzy match quality against typed, with words the
// fuzzy matcher rejects kept afterwards in registration order. An empty typed
// string keeps registration order untouched.
func rankWords(words []string, typed string) []string {
	if typed == "" {
		return words
	}

	ranked := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, m := range fuzzy.Find(typed, words) {
		ranked = append(ranked, m.Str)
		seen[m.Str] = true
	}
	for _, w := range words {
		if !seen[w] {
			ranked = append(ranked, w)
		}
	}
	return ranked
}
