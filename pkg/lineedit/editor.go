package lineedit

import (
	"go.uber.org/zap"

	"github.com/sewbacca/clink/pkg/complete"
)

// Editor owns a generator chain, a completion engine, and the line buffer,
// and exposes the two completion actions the key-dispatch layer binds.
// Completion requests are strictly sequential: each action snapshots the
// buffer into a fresh LineState, runs the chain once, and applies exactly one
// engine action before returning.
type Editor struct {
	chain  *complete.Chain
	engine *complete.Engine
	buffer *Buffer
	logger *zap.Logger
}

// NewEditor creates an editor with an empty buffer and an empty chain.
// defaultSep is handed to the engine for directory candidates typed without a
// separator; zero means '/'. A nil logger disables logging.
func NewEditor(logger *zap.Logger, defaultSep byte) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{
		chain:  complete.NewChain(),
		engine: complete.NewEngine(defaultSep),
		buffer: NewBuffer(),
		logger: logger,
	}
}

// Buffer returns the editor's line buffer.
func (e *Editor) Buffer() *Buffer {
	return e.buffer
}

// RegisterGenerator appends g to the chain; registration order is completion
// priority, first claim wins.
func (e *Editor) RegisterGenerator(g complete.Generator) {
	e.chain.Register(g)
}

// InsertAllCandidates replaces the end word with every viable candidate,
// space-joined. No generator claiming, or zero viable candidates, leaves the
// line unchanged.
func (e *Editor) InsertAllCandidates() {
	ls, b, claimed := e.run()
	if !claimed {
		return
	}
	e.engine.InsertAll(ls, b, e.buffer)
}

// CompleteCommonPrefix advances the end word to the longest prefix all viable
// candidates agree on, completing fully when only one remains.
func (e *Editor) CompleteCommonPrefix() {
	ls, b, claimed := e.run()
	if !claimed {
		return
	}
	e.engine.Complete(ls, b, e.buffer)
}

// Candidates returns the display tokens of the currently viable candidates
// without mutating the buffer. Intended for menu rendering.
func (e *Editor) Candidates() []string {
	ls, b, claimed := e.run()
	if !claimed {
		return nil
	}
	return e.engine.Viable(ls, b)
}

func (e *Editor) run() (*complete.LineState, *complete.Builder, bool) {
	ls := complete.NewLineState(e.buffer.Text(), e.buffer.Pos())
	b, claimed := e.chain.Run(ls)
	e.logger.Debug("completion chain run",
		zap.String("endword", ls.EndWord().Text),
		zap.Bool("claimed", claimed),
		zap.Int("candidates", b.Len()),
	)
	return ls, b, claimed
}
