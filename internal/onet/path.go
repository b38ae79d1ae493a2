package onet

import (
	"fmt"
	"slices"
)

// MaxTurns is the number of direction changes a connecting route may use.
const MaxTurns = 2

// Route is an ordered sequence of points from one tile to its partner.
// Consecutive points are exactly one unit step apart.
type Route []Point

// Start returns the first point of the route.
func (r Route) Start() Point {
	return r[0]
}

// End returns the last point of the route.
func (r Route) End() Point {
	return r[len(r)-1]
}

// Turns returns the number of direction changes along the route.
func (r Route) Turns() int {
	turns := 0
	var prev Dir
	for i := 1; i < len(r); i++ {
		d, _ := dirBetween(r[i-1], r[i])
		if i > 1 && d != prev {
			turns++
		}
		prev = d
	}
	return turns
}

// Corners returns the start point, every point where the route changes
// direction, and the end point. Renderers draw straight lines between them.
func (r Route) Corners() []Point {
	if len(r) < 2 {
		return slices.Clone(r)
	}

	corners := []Point{r[0]}
	prev, _ := dirBetween(r[0], r[1])
	for i := 2; i < len(r); i++ {
		d, _ := dirBetween(r[i-1], r[i])
		if d != prev {
			corners = append(corners, r[i-1])
		}
		prev = d
	}
	return append(corners, r[len(r)-1])
}

// searchNode is one BFS state: standing at a cell, heading in dir, having
// spent turns direction changes. parent indexes the node this one was
// reached from in a straight line, or -1 for the seeds.
type searchNode struct {
	at     Point
	dir    Dir
	turns  int
	parent int
}

// finder holds the per-call search state. The visited set is a flat slice
// indexed by (row+1, col+1, dir, turns) so the corridor ring needs no
// negative indices.
type finder struct {
	board   *Board
	end     Point
	stride  int
	visited []bool
	nodes   []searchNode
}

func newFinder(b *Board, end Point) *finder {
	stride := b.cols + 2
	return &finder{
		board:   b,
		end:     end,
		stride:  stride,
		visited: make([]bool, (b.rows+2)*stride*numDirs*(MaxTurns+1)),
		nodes:   make([]searchNode, 0, 4*numDirs),
	}
}

func (f *finder) key(p Point, d Dir, turns int) int {
	cell := (p.Row+1)*f.stride + (p.Col + 1)
	return (cell*numDirs+int(d))*(MaxTurns+1) + turns
}

// visit marks a state and reports whether it was new.
func (f *finder) visit(p Point, d Dir, turns int) bool {
	k := f.key(p, d, turns)
	if f.visited[k] {
		return false
	}
	f.visited[k] = true
	return true
}

// traversable reports whether a straight run may enter p.
func (f *finder) traversable(p Point) bool {
	if p == f.end {
		return true
	}
	if f.board.InBounds(p) {
		return f.board.At(p) == Empty
	}
	return f.board.InCorridor(p)
}

// FindPath searches for a route from start to end that runs through empty
// cells or the one-cell corridor around the board and turns at most
// MaxTurns times. It returns nil when no such route exists.
//
// FindPath does not compare tile types; callers check that start and end
// hold matching tiles. A nil board is a caller bug and panics.
func FindPath(b *Board, start, end Point) Route {
	if b == nil {
		panic("onet: FindPath called with nil board")
	}
	if start == end || !b.InBounds(start) || !b.InBounds(end) {
		return nil
	}

	f := newFinder(b, end)
	return f.search(start)
}

func (f *finder) search(start Point) Route {
	// The first leg may leave in any direction without paying for a turn.
	for _, d := range Dirs {
		f.visit(start, d, 0)
		f.nodes = append(f.nodes, searchNode{at: start, dir: d, turns: 0, parent: -1})
	}

	for head := 0; head < len(f.nodes); head++ {
		n := f.nodes[head]

		for _, dir := range Dirs {
			turns := n.turns
			if dir != n.dir {
				turns++
			}
			if turns > MaxTurns {
				continue
			}

			for p := n.at.Step(dir); f.traversable(p); p = p.Step(dir) {
				if p == f.end {
					return f.route(head, p)
				}

				for _, next := range Dirs {
					nextTurns := turns
					if next != dir {
						nextTurns++
					}
					if nextTurns > MaxTurns || !f.visit(p, next, nextTurns) {
						continue
					}
					f.nodes = append(f.nodes, searchNode{at: p, dir: next, turns: nextTurns, parent: head})
				}
			}
		}
	}

	return nil
}

// route rebuilds the full unit-step route ending at end, reached in a
// straight line from node last.
func (f *finder) route(last int, end Point) Route {
	corners := []Point{end}
	for i := last; i >= 0; i = f.nodes[i].parent {
		corners = append(corners, f.nodes[i].at)
	}
	slices.Reverse(corners)

	route := Route{corners[0]}
	for _, c := range corners[1:] {
		route = appendStraight(route, c)
	}
	return route
}

// appendStraight extends the route one unit step at a time up to to.
func appendStraight(route Route, to Point) Route {
	from := route[len(route)-1]
	if from.Row != to.Row && from.Col != to.Col {
		panic(fmt.Sprintf("onet: route segment %v -> %v is not straight", from, to))
	}

	dr, dc := sign(to.Row-from.Row), sign(to.Col-from.Col)
	for from != to {
		from = Point{Row: from.Row + dr, Col: from.Col + dc}
		route = append(route, from)
	}
	return route
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
