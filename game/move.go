package game

import "fmt"

// Move relocates one token to an adjacent cell.
type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

func (m Move) Direction() Direction {
	d, _ := DirectionBetween(m.From, m.To)
	return d
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}
