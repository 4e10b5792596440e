package game

// Tally holds the running counters a match keeps next to its board.
type Tally struct {
	Moves       int
	Defensive   int // consecutive moves without a capture
	Offensive   int // consecutive capturing moves
	GreenTokens int
	RedTokens   int
}

func NewTally() Tally {
	return Tally{GreenTokens: InitialTokens, RedTokens: InitialTokens}
}

func (t *Tally) TokensOf(player Color) int {
	switch player {
	case Green:
		return t.GreenTokens
	case Red:
		return t.RedTokens
	default:
		return 0
	}
}

// Record books a move by mover that removed captured opponent tokens.
func (t *Tally) Record(mover Color, captured int) {
	if captured == 0 {
		t.Defensive++
		t.Offensive = 0
	} else {
		t.Defensive = 0
		t.Offensive++
		switch mover.Opponent() {
		case Green:
			t.GreenTokens -= captured
		case Red:
			t.RedTokens -= captured
		}
	}
	t.Moves++
}

// ApplyMove moves the token on from to to and runs the capture sweep. The move
// must satisfy IsLegalMove. The removed cells are returned in sweep order and,
// when tally is non-nil, the move is recorded on it.
//
// The sweep first walks forward from the cell beyond to along the move
// direction, removing opponent tokens until it meets anything else. Only if
// that removed nothing does it walk backward starting one cell behind from.
func (b *Board) ApplyMove(from, to Coord, tally *Tally) []Coord {
	mover := b.At(from)
	d, _ := DirectionBetween(from, to)

	b.Set(from, Empty)
	b.Set(to, mover)

	captured := b.sweep(to.Step(d), d, mover.Opponent())
	if len(captured) == 0 {
		back := d.Reverse()
		captured = b.sweep(from.Step(back), back, mover.Opponent())
	}

	if tally != nil {
		tally.Record(mover, len(captured))
	}
	return captured
}

func (b *Board) sweep(start Coord, d Direction, opponent Color) []Coord {
	var captured []Coord
	for c := start; c.InBounds() && b.At(c) == opponent; c = c.Step(d) {
		b.Set(c, Empty)
		captured = append(captured, c)
	}
	return captured
}
