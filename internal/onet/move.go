package onet

// Move is a connectable pair of tiles together with the route joining them.
type Move struct {
	A     Point
	B     Point
	Route Route
}

// FindMove returns the first connectable pair on the board, scanning tiles
// row by row. ok is false when the board is deadlocked (or cleared).
func FindMove(b *Board) (m Move, ok bool) {
	byType := make(map[Tile][]Point)
	for _, p := range b.Occupied() {
		t := b.At(p)
		for _, q := range byType[t] {
			if route := FindPath(b, q, p); route != nil {
				return Move{A: q, B: p, Route: route}, true
			}
		}
		byType[t] = append(byType[t], p)
	}
	return Move{}, false
}

// HasMoves reports whether at least one pair can still be removed.
func HasMoves(b *Board) bool {
	_, ok := FindMove(b)
	return ok
}

// PlayOut removes connectable pairs from b, always taking the first move
// FindMove reports, until none is left. It returns the number of pairs
// removed; b is cleared when PlayOut removed every tile.
func PlayOut(b *Board) int {
	removed := 0
	for {
		m, ok := FindMove(b)
		if !ok {
			return removed
		}
		b.Clear(m.A)
		b.Clear(m.B)
		removed++
	}
}
