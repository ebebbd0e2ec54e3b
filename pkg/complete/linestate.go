package complete

import "strings"

// Word is one whitespace-delimited token of the input line. Start and End are
// byte offsets into the original line, with Text == line[Start:End].
type Word struct {
	Text  string
	Start int
	End   int
}

// LineState is an immutable snapshot of the input line and cursor, taken once
// per completion request. Words are split on runs of spaces and tabs; a path
// separator inside a word does not split it. There is no quoting or escaping
// at this layer.
type LineState struct {
	line   string
	cursor int
	words  []Word
	end    Word
}

// NewLineState parses line and computes the word containing cursor. The
// cursor is clamped to [0, len(line)].
func NewLineState(line string, cursor int) *LineState {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(line) {
		cursor = len(line)
	}

	ls := &LineState{
		line:   line,
		cursor: cursor,
		end:    Word{Start: cursor, End: cursor},
	}

	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && line[i] != ' ' && line[i] != '\t' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			ls.words = append(ls.words, Word{Text: line[start:i], Start: start, End: i})
			start = -1
		}
	}

	// The end word is the portion of the containing word up to the cursor;
	// between words it stays the empty word at the cursor.
	for _, w := range ls.words {
		if w.Start < cursor && cursor <= w.End {
			ls.end = Word{Text: line[w.Start:cursor], Start: w.Start, End: cursor}
			break
		}
	}

	return ls
}

// Line returns the raw line the state was built from.
func (ls *LineState) Line() string {
	return ls.line
}

// Cursor returns the (clamped) cursor offset.
func (ls *LineState) Cursor() int {
	return ls.cursor
}

// WordCount returns the number of words on the line.
func (ls *LineState) WordCount() int {
	return len(ls.words)
}

// Word returns the i-th word (zero-based). Out-of-range indices yield an
// empty word.
func (ls *LineState) Word(i int) Word {
	if i < 0 || i >= len(ls.words) {
		return Word{}
	}
	return ls.words[i]
}

// EndWord returns the token a completion action targets: the word containing
// the cursor, truncated at the cursor, or an empty word at the cursor when
// the cursor sits between words.
func (ls *LineState) EndWord() Word {
	return ls.end
}

// EndWordBasename returns the end word after its last path separator, or the
// whole end word when it contains none.
func (ls *LineState) EndWordBasename() string {
	s := ls.end.Text
	if i := lastSeparator(s); i >= 0 {
		return s[i+1:]
	}
	return s
}

// EndWordDirpart returns the end word up to and including its last path
// separator, or "" when it contains none. EndWordDirpart()+EndWordBasename()
// always reassembles the end word.
func (ls *LineState) EndWordDirpart() string {
	s := ls.end.Text
	if i := lastSeparator(s); i >= 0 {
		return s[:i+1]
	}
	return ""
}

// endSeparator returns the separator byte actually present in the end word,
// or 0 when it contains none.
func (ls *LineState) endSeparator() byte {
	if i := lastSeparator(ls.end.Text); i >= 0 {
		return ls.end.Text[i]
	}
	return 0
}

// lastSeparator returns the index of the last '/' or '\' in s, or -1.
func lastSeparator(s string) int {
	slash := strings.LastIndexByte(s, '/')
	if back := strings.LastIndexByte(s, '\\'); back > slash {
		return back
	}
	return slash
}
