// Package lineedit glues the completion core to a mutable input line: a byte
// offset buffer with a cursor, and an Editor binding a generator chain and
// the completion engine to the two user-facing completion actions.
package lineedit

import "unicode/utf8"

// Buffer manages text content and a cursor position for line input. Offsets
// are byte offsets, keeping them aligned with the byte-wise prefix semantics
// of the completion engine. It implements complete.Buffer.
type Buffer struct {
	text string
	pos  int
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferWithText creates a buffer with initial text and the cursor at the
// end.
func NewBufferWithText(text string) *Buffer {
	return &Buffer{text: text, pos: len(text)}
}

// Text returns the current content.
func (b *Buffer) Text() string {
	return b.text
}

// Pos returns the cursor's byte offset.
func (b *Buffer) Pos() int {
	return b.pos
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// SetText replaces the content and moves the cursor to the end.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.pos = len(text)
}

// SetPos moves the cursor, clamped to [0, Len()].
func (b *Buffer) SetPos(pos int) {
	b.pos = clamp(pos, 0, len(b.text))
}

// Clear removes all content and resets the cursor.
func (b *Buffer) Clear() {
	b.text = ""
	b.pos = 0
}

// ReplaceSpan replaces the byte span [start, end) with text and leaves the
// cursor at the end of the inserted text. The span is clamped to the content.
func (b *Buffer) ReplaceSpan(start, end int, text string) {
	start = clamp(start, 0, len(b.text))
	end = clamp(end, start, len(b.text))
	b.text = b.text[:start] + text + b.text[end:]
	b.pos = start + len(text)
}

// SpliceAt inserts text at byte offset pos and leaves the cursor at the end
// of the inserted text.
func (b *Buffer) SpliceAt(pos int, text string) {
	pos = clamp(pos, 0, len(b.text))
	b.text = b.text[:pos] + text + b.text[pos:]
	b.pos = pos + len(text)
}

// Insert inserts text at the cursor.
func (b *Buffer) Insert(text string) {
	b.SpliceAt(b.pos, text)
}

// Backspace removes the rune before the cursor, if any.
func (b *Buffer) Backspace() {
	if b.pos == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.pos])
	b.text = b.text[:b.pos-size] + b.text[b.pos:]
	b.pos -= size
}

// CursorLeft moves the cursor one rune left.
func (b *Buffer) CursorLeft() {
	if b.pos == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.pos])
	b.pos -= size
}

// CursorRight moves the cursor one rune right.
func (b *Buffer) CursorRight() {
	if b.pos >= len(b.text) {
		return
	}
	_, size := utf8.DecodeRuneInString(b.text[b.pos:])
	b.pos += size
}

// CursorStart moves the cursor to the start of the content.
func (b *Buffer) CursorStart() {
	b.pos = 0
}

// CursorEnd moves the cursor to the end of the content.
func (b *Buffer) CursorEnd() {
	b.pos = len(b.text)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
