package complete

// Generator is a pluggable candidate source. Generate inspects the line and,
// if it claims the context, populates b and returns true. A generator that
// returns false must leave b exactly as it found it so the chain can fall
// through cleanly to the next registered generator; generators should
// determine applicability before adding matches.
type Generator interface {
	Generate(ls *LineState, b *Builder) bool
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(*LineState, *Builder) bool

// Generate calls f.
func (f GeneratorFunc) Generate(ls *LineState, b *Builder) bool {
	return f(ls, b)
}

// Chain runs generators in registration order and stops at the first one that
// claims the context. Registration order is completion priority.
type Chain struct {
	generators []Generator
}

// NewChain returns a chain over the given generators, highest priority first.
func NewChain(generators ...Generator) *Chain {
	return &Chain{generators: generators}
}

// Register appends g to the chain.
func (c *Chain) Register(g Generator) {
	c.generators = append(c.generators, g)
}

// Run executes the chain against ls with a fresh builder. The returned
// builder holds the claiming generator's candidates; claimed is false when no
// generator claimed the context (the engine then sees zero candidates).
//
// The builder is snapshot and rolled back around every generator that
// declines, so a generator violating the side-effect discipline cannot leak
// matches into a later generator's result. For conforming generators the
// rollback is unobservable.
func (c *Chain) Run(ls *LineState) (b *Builder, claimed bool) {
	b = NewBuilder()
	for _, g := range c.generators {
		snap := b.snapshot()
		if g.Generate(ls, b) {
			return b, true
		}
		b.restore(snap)
	}
	return b, false
}
