package onet

import "math/rand"

// Generate builds a fresh rows x cols board holding tileTypes distinct tile
// types (1..tileTypes). Pairs are spread as evenly as possible: every type
// gets pairsNeeded/tileTypes pairs and the first pairsNeeded%tileTypes types
// get one more. Boards with an odd cell count receive one extra tile of a
// random type, so exactly one type ends up with an odd count.
//
// All randomness comes from rng, which makes generation reproducible.
func Generate(rows, cols, tileTypes int, rng *rand.Rand) (*Board, error) {
	fail := func(reason string) (*Board, error) {
		return nil, &GenerationError{Rows: rows, Cols: cols, TileTypes: tileTypes, Reason: reason}
	}

	switch {
	case tileTypes <= 0:
		return fail("no tile types available")
	case rows <= 0 || cols <= 0:
		return fail("board dimensions must be positive")
	case rng == nil:
		return fail("no random source")
	}

	totalSlots := rows * cols
	pairsNeeded := totalSlots / 2
	basePairs := pairsNeeded / tileTypes
	remainder := pairsNeeded % tileTypes

	tiles := make([]Tile, 0, totalSlots+1)
	for i := range tileTypes {
		pairs := basePairs
		if i < remainder {
			pairs++
		}
		t := Tile(i + 1)
		for range pairs {
			tiles = append(tiles, t, t)
		}
	}

	if len(tiles) < totalSlots {
		tiles = append(tiles, Tile(rng.Intn(tileTypes)+1))
	}

	// Should already match; anything else means the formula above is broken.
	if len(tiles) > totalSlots {
		tiles = tiles[:totalSlots]
	}
	if len(tiles) != totalSlots {
		return fail("tile list does not fill the board")
	}

	shuffleTiles(tiles, rng)

	b := NewBoard(rows, cols)
	copy(b.cells, tiles)
	return b, nil
}

// shuffleTiles performs an in-place Fisher-Yates shuffle.
func shuffleTiles(tiles []Tile, rng *rand.Rand) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}

// Reshuffle permutes the remaining tiles among the occupied cells.
// Empty cells stay empty and the multiset of tiles is unchanged.
func (b *Board) Reshuffle(rng *rand.Rand) {
	occupied := b.Occupied()
	tiles := make([]Tile, len(occupied))
	for i, p := range occupied {
		tiles[i] = b.At(p)
	}

	shuffleTiles(tiles, rng)

	for i, p := range occupied {
		b.Set(p, tiles[i])
	}
}
