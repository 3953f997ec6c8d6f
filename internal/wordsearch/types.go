// internal/wordsearch/types.go
//
// Core type definitions for the word-search puzzle engine.
// Defines:
//   - Direction: one of the four placement vectors a word can be laid along.
//   - Position:  integer (row, col) grid coordinate.
//   - Cell:      a single grid cell with its letter and gameplay flags.
//   - PlacedWord: a word successfully placed in the grid, with its geometry.
//   - Grid:      the finished puzzle (cell matrix + placed words).
//   - DifficultyConfig: per-tier generation parameters, supplied by callers.

package wordsearch

// Direction identifies one of the four recognized placement vectors.
// Reversed reading (right-to-left, bottom-to-top) is handled by the
// selection validator, not by extra directions.
type Direction string

const (
	Horizontal      Direction = "horizontal"      // (0, 1)
	Vertical        Direction = "vertical"        // (1, 0)
	Diagonal        Direction = "diagonal"        // (1, 1)
	DiagonalReverse Direction = "diagonalReverse" // (1, -1)
)

// AllDirections lists every recognized direction; no others exist.
var AllDirections = []Direction{Horizontal, Vertical, Diagonal, DiagonalReverse}

// Vector returns the per-step (row, col) delta for d.
// Unknown directions report (0, 0).
func (d Direction) Vector() (dr, dc int) {
	switch d {
	case Horizontal:
		return 0, 1
	case Vertical:
		return 1, 0
	case Diagonal:
		return 1, 1
	case DiagonalReverse:
		return 1, -1
	}
	return 0, 0
}

// Position is a grid coordinate with 0 <= Row,Col < size.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// step returns the position n steps from p along direction d.
func (p Position) step(d Direction, n int) Position {
	dr, dc := d.Vector()
	return Position{Row: p.Row + n*dr, Col: p.Col + n*dc}
}

// Cell is a single grid cell. Letter is always one uppercase A-Z
// character once a grid is assembled. IsSelected/IsFound are gameplay
// flags mutated by the caller, never by the engine.
type Cell struct {
	Letter     string `json:"letter"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	IsSelected bool   `json:"isSelected"`
	IsFound    bool   `json:"isFound"`
}

// Pos returns the cell's coordinate as a Position.
func (c Cell) Pos() Position { return Position{Row: c.Row, Col: c.Col} }

// PlacedWord records one word placed in the grid together with its true
// geometry. End always equals Start advanced len(Text)-1 steps along
// Direction.
type PlacedWord struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"` // canonical uppercase
	Found     bool      `json:"found"`
	Start     Position  `json:"startPos"`
	End       Position  `json:"endPos"`
	Direction Direction `json:"direction"`
	Color     string    `json:"color"`
	IsBonus   bool      `json:"isBonus"`
}

// Grid is the finished puzzle value. The engine never mutates a Grid
// after construction; only the IsSelected/IsFound/Found flags are
// touched afterwards, by the gameplay layer.
type Grid struct {
	Cells [][]Cell     `json:"cells"`
	Size  int          `json:"size"`
	Words []PlacedWord `json:"words"`
}

// DifficultyConfig carries the per-tier generation parameters. Tiers
// are defined by callers and handed in verbatim; the engine hardcodes
// none of them.
type DifficultyConfig struct {
	GridSize          int         // side length of the square grid
	WordCount         int         // number of main words to aim for
	MinWordLength     int         // inclusive lower bound on word length
	MaxWordLength     int         // inclusive upper bound on word length
	AllowedDirections []Direction // placement directions for this tier
	Fill              FillStrategy
}

// directions returns the tier's allowed directions, defaulting to all
// four when the config leaves them unset.
func (c DifficultyConfig) directions() []Direction {
	if len(c.AllowedDirections) == 0 {
		return AllDirections
	}
	return c.AllowedDirections
}

// wordColors is the highlight palette cycled over placed words in
// placement order. Downstream UIs key found-word highlights on it.
var wordColors = []string{
	"#EF5350", "#AB47BC", "#5C6BC0", "#29B6F6",
	"#26A69A", "#9CCC65", "#FFCA28", "#FF7043",
}
