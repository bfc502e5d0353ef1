// Package layout builds keyboard adjacency graphs from literal
// key-grid text. Two grid modes exist:
//
//   - slanted: typewriter-style rows offset horizontally, two
//     characters per cell (unshifted then shifted), six neighbor
//     directions (W, NW, NE, E, SE, SW);
//   - aligned: keypad-style grids, one character per cell, eight
//     neighbor directions.
//
// The spatial matcher walks these graphs looking for runs of adjacent
// keys. Neighbor slots keep a stable per-direction index, with empty
// strings for off-grid directions, so a run's direction can be
// compared step to step.
package layout

import (
	"fmt"
	"strings"
)

// Mode selects the grid geometry.
type Mode int

const (
	// Slanted is the 6-neighbor offset-row geometry.
	Slanted Mode = iota
	// Aligned is the 8-neighbor grid geometry.
	Aligned
)

// Neighbor coordinate deltas, one per direction slot. Order is fixed:
// the numeric direction index must be consistent across keys.
var (
	slantedDeltas = [][2]int{
		{-1, 0}, {0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1},
	}
	alignedDeltas = [][2]int{
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1},
	}
)

// Graph is a named keyboard adjacency graph.
type Graph struct {
	name string

	// adjacency maps each key character to its ordered neighbor
	// slots. A slot holds the neighboring cell string ("ab" meaning
	// unshifted a, shifted b) or "" when that direction is off-grid.
	adjacency map[rune][]string

	startingPositions int
	averageDegree     float64
}

// Name returns the layout name.
func (g *Graph) Name() string { return g.name }

// StartingPositions returns the number of keys with at least one
// neighbor.
func (g *Graph) StartingPositions() int { return g.startingPositions }

// AverageDegree returns the mean number of non-empty neighbor slots
// over the starting positions.
func (g *Graph) AverageDegree() float64 { return g.averageDegree }

// Contains reports whether c is a key of this layout.
func (g *Graph) Contains(c rune) bool {
	_, ok := g.adjacency[c]
	return ok
}

// Step resolves the move from key prev to key cur. It returns the
// direction slot index, whether cur is reached shifted, and whether
// the two keys are adjacent at all.
func (g *Graph) Step(prev, cur rune) (direction int, shifted, ok bool) {
	slots, found := g.adjacency[prev]
	if !found {
		return 0, false, false
	}
	for d, cell := range slots {
		if cell == "" {
			continue
		}
		for idx, c := range cell {
			if c == cur {
				return d, idx >= 1, true
			}
		}
	}
	return 0, false, false
}

// Parse builds a Graph from grid text.
//
// Cells are separated by single spaces. In slanted mode, column x of
// row y (1-based) sits at character offset 3*x + (y-1) and each cell
// is two characters. In aligned mode cells are single characters on a
// 2-column stride.
func Parse(name string, mode Mode, grid string) (*Graph, error) {
	cellWidth := 2
	deltas := slantedDeltas
	if mode == Aligned {
		cellWidth = 1
		deltas = alignedDeltas
	}

	cells := make(map[[2]int]string)
	lines := strings.Split(strings.Trim(grid, "\n"), "\n")
	for row, line := range lines {
		y := row + 1
		slant := y - 1
		if mode == Aligned {
			slant = 0
		}
		for _, tok := range tokenize(line) {
			if len([]rune(tok.text)) != cellWidth {
				return nil, fmt.Errorf("layout %q row %d: cell %q is not %d characters",
					name, y, tok.text, cellWidth)
			}
			offset := tok.offset - slant
			if offset < 0 || offset%(cellWidth+1) != 0 {
				return nil, fmt.Errorf("layout %q row %d: cell %q is misaligned",
					name, y, tok.text)
			}
			x := offset / (cellWidth + 1)
			cells[[2]int{x, y}] = tok.text
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("layout %q: empty grid", name)
	}

	g := &Graph{
		name:      name,
		adjacency: make(map[rune][]string),
	}
	for pos, cell := range cells {
		slots := make([]string, len(deltas))
		for d, delta := range deltas {
			if neighbor, ok := cells[[2]int{pos[0] + delta[0], pos[1] + delta[1]}]; ok {
				slots[d] = neighbor
			}
		}
		// Both the unshifted and shifted character of a cell share the
		// cell's neighbor slots.
		for _, c := range cell {
			g.adjacency[c] = slots
		}
	}

	edges := 0
	for _, slots := range g.adjacency {
		occupied := 0
		for _, s := range slots {
			if s != "" {
				occupied++
			}
		}
		if occupied > 0 {
			g.startingPositions++
			edges += occupied
		}
	}
	if g.startingPositions > 0 {
		g.averageDegree = float64(edges) / float64(g.startingPositions)
	}
	return g, nil
}

type token struct {
	offset int
	text   string
}

// tokenize splits a grid row into space-separated cells with their
// character offsets. Grid text is ASCII-positional by format, but cell
// contents may be any runes.
func tokenize(line string) []token {
	var toks []token
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		if runes[i] == ' ' {
			i++
			continue
		}
		start := i
		for i < len(runes) && runes[i] != ' ' {
			i++
		}
		toks = append(toks, token{offset: start, text: string(runes[start:i])})
	}
	return toks
}
