// Package idgen hands out sequential integer identifiers.
package idgen

// Generator issues 1, 2, 3, ... and never repeats a value during its
// lifetime. It is not safe for concurrent use.
type Generator struct {
	last int
}

func New() *Generator {
	return &Generator{}
}

// Next returns the next free ID.
func (g *Generator) Next() int {
	g.last++
	return g.last
}

// Peek returns the ID the next call to Next will return.
func (g *Generator) Peek() int {
	return g.last + 1
}
