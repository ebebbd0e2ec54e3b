// Package completers provides the stock generators wired into a default
// completion chain: word lists for registered commands, command names from
// $PATH, and filesystem entries as the terminal fallback.
package completers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sewbacca/clink/pkg/complete"
)

// osReadDir is a variable that can be overridden for testing.
var osReadDir = os.ReadDir

// FileGenerator emits file and directory candidates for the directory named
// by the end word's directory part. It is the terminal fallback generator and
// always claims the context; an unreadable directory claims with zero
// candidates so completion degenerates to a no-op.
type FileGenerator struct {
	pwd func() string
}

// NewFileGenerator creates a FileGenerator resolving relative paths against
// pwd. A nil pwd means the process working directory.
func NewFileGenerator(pwd func() string) *FileGenerator {
	if pwd == nil {
		pwd = func() string {
			dir, err := os.Getwd()
			if err != nil {
				return "."
			}
			return dir
		}
	}
	return &FileGenerator{pwd: pwd}
}

// Generate implements complete.Generator.
func (g *FileGenerator) Generate(ls *complete.LineState, b *complete.Builder) bool {
	base := ls.EndWordBasename()

	entries, err := osReadDir(g.resolveDir(ls.EndWordDirpart()))
	if err != nil {
		return true
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		// Hidden entries only complete when explicitly asked for.
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		kind := complete.MatchFile
		if entry.IsDir() {
			kind = complete.MatchDir
		}
		b.Add(complete.Match{Text: name, Kind: kind})
	}
	return true
}

// resolveDir maps the typed directory part onto a real directory path.
// Backslash separators are accepted interchangeably with slashes.
func (g *FileGenerator) resolveDir(dirpart string) string {
	dir := strings.ReplaceAll(dirpart, "\\", "/")
	dir = strings.TrimSuffix(dir, "/")

	switch {
	case dirpart == "":
		return g.pwd()
	case dir == "":
		// The dirpart was just a separator: the filesystem root.
		return "/"
	case dir == "~" || strings.HasPrefix(dir, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return dir
		}
		return filepath.Join(home, strings.TrimPrefix(dir, "~"))
	case filepath.IsAbs(dir):
		return dir
	default:
		return filepath.Join(g.pwd(), dir)
	}
}
