package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testBuffer is a minimal Buffer for exercising the engine without the
// line-editing layer.
type testBuffer struct {
	text string
	pos  int
}

func newTestBuffer(text string) *testBuffer {
	return &testBuffer{text: text, pos: len(text)}
}

func (b *testBuffer) Text() string { return b.text }
func (b *testBuffer) Pos() int     { return b.pos }

func (b *testBuffer) ReplaceSpan(start, end int, text string) {
	b.text = b.text[:start] + text + b.text[end:]
	b.pos = start + len(text)
}

func (b *testBuffer) SpliceAt(pos int, text string) {
	b.text = b.text[:pos] + text + b.text[pos:]
	b.pos = pos + len(text)
}

func buildMatches(prefixIncluded bool, matches ...Match) *Builder {
	b := NewBuilder()
	b.SetPrefixIncluded(prefixIncluded)
	for _, m := range matches {
		b.Add(m)
	}
	return b
}

func words(texts ...string) []Match {
	out := make([]Match, len(texts))
	for i, t := range texts {
		out[i] = Match{Text: t, Kind: MatchWord}
	}
	return out
}

func files(texts ...string) []Match {
	out := make([]Match, len(texts))
	for i, t := range texts {
		out[i] = Match{Text: t, Kind: MatchFile}
	}
	return out
}

func TestInsertAllPrefixIncluded(t *testing.T) {
	buf := newTestBuffer("xyzzy fo")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(true, words("foo/bar", "foo/bark", "foo/box", "food", "fool")...)

	NewEngine(0).InsertAll(ls, b, buf)

	assert.Equal(t, "xyzzy foo/bar foo/bark foo/box food fool ", buf.Text())
	assert.Equal(t, len(buf.Text()), buf.Pos())
}

func TestInsertAllReattachesDirpart(t *testing.T) {
	buf := newTestBuffer("plugh dir\\")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false, files("bark", "boxy")...)

	NewEngine(0).InsertAll(ls, b, buf)

	assert.Equal(t, "plugh dir\\bark dir\\boxy ", buf.Text())
}

func TestInsertAllFiltersByBasename(t *testing.T) {
	buf := newTestBuffer("plugh dir/b")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false, files("bark", "boxy", "crow")...)

	NewEngine(0).InsertAll(ls, b, buf)

	assert.Equal(t, "plugh dir/bark dir/boxy ", buf.Text())
}

func TestInsertAllAppendsTypedSeparatorToDirs(t *testing.T) {
	buf := newTestBuffer("cd dir\\s")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false,
		Match{Text: "sub", Kind: MatchDir},
		Match{Text: "spam", Kind: MatchFile},
	)

	NewEngine(0).InsertAll(ls, b, buf)

	assert.Equal(t, "cd dir\\sub\\ dir\\spam ", buf.Text())
}

func TestInsertAllUsesDefaultSeparatorWhenNoneTyped(t *testing.T) {
	buf := newTestBuffer("cd s")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false, Match{Text: "sub", Kind: MatchDir})

	NewEngine('\\').InsertAll(ls, b, buf)

	assert.Equal(t, "cd sub\\ ", buf.Text())
}

func TestInsertAllZeroViableIsNoop(t *testing.T) {
	buf := newTestBuffer("plugh zz")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false, files("bark", "boxy")...)

	NewEngine(0).InsertAll(ls, b, buf)

	assert.Equal(t, "plugh zz", buf.Text())
	assert.Equal(t, 8, buf.Pos())
}

func TestInsertAllPreservesTextAfterCursor(t *testing.T) {
	// Only [start of end word, cursor) is replaced.
	buf := newTestBuffer("plugh dir\\b tail")
	buf.pos = 11
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false, files("bark")...)

	NewEngine(0).InsertAll(ls, b, buf)

	assert.Equal(t, "plugh dir\\bark  tail", buf.Text())
	assert.Equal(t, 15, buf.Pos())
}

func TestCompleteSingleMatchFastPath(t *testing.T) {
	buf := newTestBuffer("plugh dir\\b")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false, files("bark", "boxy")...)

	NewEngine(0).Complete(ls, b, buf)

	assert.Equal(t, "plugh dir\\bark ", buf.Text())
	assert.Equal(t, len(buf.Text()), buf.Pos())
}

func TestCompleteSingleDirMatchAppendsSeparator(t *testing.T) {
	buf := newTestBuffer("cd dir/s")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false, Match{Text: "sub", Kind: MatchDir})

	NewEngine(0).Complete(ls, b, buf)

	assert.Equal(t, "cd dir/sub/ ", buf.Text())
}

func TestCompleteCommonPrefix(t *testing.T) {
	buf := newTestBuffer("plugh dir\\")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false, files("bark", "boxy")...)

	NewEngine(0).Complete(ls, b, buf)

	assert.Equal(t, "plugh dir\\b", buf.Text())
	assert.Equal(t, len(buf.Text()), buf.Pos())
}

func TestCompletePrefixIncludedAlreadyAtCommonPrefix(t *testing.T) {
	buf := newTestBuffer("xyzzy foo/ba")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(true, words("foo/bar", "foo/bark")...)

	NewEngine(0).Complete(ls, b, buf)

	// Common prefix "foo/bar" only extends the typed "foo/ba" by "r".
	assert.Equal(t, "xyzzy foo/bar", buf.Text())

	// One step further there is nothing unambiguous left to add.
	ls = NewLineState(buf.Text(), buf.Pos())
	NewEngine(0).Complete(ls, buildMatches(true, words("foo/bar", "foo/bark")...), buf)
	assert.Equal(t, "xyzzy foo/bar", buf.Text())
}

func TestCompleteZeroViableIsNoop(t *testing.T) {
	buf := newTestBuffer("plugh zz")
	ls := NewLineState(buf.Text(), buf.Pos())
	b := buildMatches(false, files("bark")...)

	NewEngine(0).Complete(ls, b, buf)

	assert.Equal(t, "plugh zz", buf.Text())
}

func TestCompleteMatchesInsertAllOnSingleCandidate(t *testing.T) {
	// With exactly one viable candidate the two actions produce the same line.
	for _, m := range []Match{
		{Text: "bark", Kind: MatchFile},
		{Text: "sub", Kind: MatchDir},
		{Text: "plain", Kind: MatchWord},
	} {
		insertBuf := newTestBuffer("run dir/" + string(m.Text[0]))
		completeBuf := newTestBuffer(insertBuf.Text())

		ls := NewLineState(insertBuf.Text(), insertBuf.Pos())
		e := NewEngine(0)
		e.InsertAll(ls, buildMatches(false, m), insertBuf)
		e.Complete(ls, buildMatches(false, m), completeBuf)

		assert.Equal(t, insertBuf.Text(), completeBuf.Text())
		assert.Equal(t, insertBuf.Pos(), completeBuf.Pos())
	}
}

func TestViableRetainsCandidateOrder(t *testing.T) {
	ls := NewLineState("x fo", 4)
	b := buildMatches(false, words("food", "fool", "foo")...)

	got := NewEngine(0).Viable(ls, b)

	assert.Equal(t, []string{"food", "fool", "foo"}, got)
}

func TestViablePrefixIncludedRoundTrip(t *testing.T) {
	ls := NewLineState("x foo/b", 7)

	// Prefix included: viability is against the full end word.
	b := buildMatches(true, words("foo/bar", "bar", "foo/box")...)
	assert.Equal(t, []string{"foo/bar", "foo/box"}, NewEngine(0).Viable(ls, b))

	// Prefix not included: viability is against the basename only, and the
	// typed directory part is re-attached for display.
	b = buildMatches(false, words("bar", "baz", "foo/bar")...)
	assert.Equal(t, []string{"foo/bar", "foo/baz"}, NewEngine(0).Viable(ls, b))
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "b", commonPrefix("bark", "boxy"))
	assert.Equal(t, "foo/bar", commonPrefix("foo/bar", "foo/bark"))
	assert.Equal(t, "", commonPrefix("abc", "xyz"))
	assert.Equal(t, "ab", commonPrefix("ab", "abc"))
	assert.Equal(t, "", commonPrefix("", "abc"))
}
