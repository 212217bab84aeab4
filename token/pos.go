package token

import "fmt"

// Pos is a zero-indexed line and column.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Line, p.Col)
}

// advance accounts for consuming c.
func (p *Pos) advance(c byte) {
	p.Col++
	if isLineTerm(c) {
		p.Line++
		p.Col = 0
	}
}

// Span covers the characters consumed for one result, from the position
// before its first character to the position after its last.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Col, s.End.Line, s.End.Col)
}
