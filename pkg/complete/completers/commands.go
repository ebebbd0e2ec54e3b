package completers

import (
	"os"
	"sort"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"

	"github.com/sewbacca/clink/pkg/complete"
)

// CommandGenerator completes the first word of the line with the names of
// executables found on $PATH. It declines everything else: argument
// positions, path-based commands (anything containing a separator, which the
// file generator handles), and prefixes matching no executable, so the chain
// can fall through.
type CommandGenerator struct {
	runner *interp.Runner
}

// NewCommandGenerator creates a CommandGenerator. When runner is non-nil,
// $PATH is read from the runner's variables so completions follow the shell's
// own environment; otherwise the process environment is used.
func NewCommandGenerator(runner *interp.Runner) *CommandGenerator {
	return &CommandGenerator{runner: runner}
}

// Generate implements complete.Generator.
func (g *CommandGenerator) Generate(ls *complete.LineState, b *complete.Builder) bool {
	ew := ls.EndWord()
	if ew.Text == "" {
		return false
	}
	if ls.WordCount() == 0 || ew.Start != ls.Word(0).Start {
		return false
	}
	if strings.ContainsAny(ew.Text, "/\\") {
		return false
	}

	names := g.executables(ew.Text)
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		b.Add(complete.Match{Text: name, Kind: complete.MatchWord})
	}
	return true
}

// executables returns the sorted, deduplicated names of executable files on
// $PATH matching prefix.
func (g *CommandGenerator) executables(prefix string) []string {
	seen := make(map[string]bool)
	for _, dir := range strings.Split(g.pathEnv(), string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		entries, err := osReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.Mode()&0111 == 0 {
				continue
			}
			seen[entry.Name()] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *CommandGenerator) pathEnv() string {
	if g.runner != nil {
		if v, ok := g.runner.Vars["PATH"]; ok && v.Kind == expand.String {
			return v.Str
		}
	}
	return os.Getenv("PATH")
}
