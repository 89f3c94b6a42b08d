// Package level defines the tile grid a maze is painted onto: the block
// vocabulary, the Grid surface addressed [y][x] and the colour palette.
package level

import (
	"errors"
	"strconv"
)

// Sentinel errors for level operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("level: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("level: all rows must have the same length")
	// ErrOutOfBounds indicates a write outside the grid.
	ErrOutOfBounds = errors.New("level: cell out of bounds")
	// ErrUnknownBlock indicates a block name that is not part of the vocabulary.
	ErrUnknownBlock = errors.New("level: unknown block")
)

// Block is the marker value stored in a grid cell.
type Block int

// Block vocabulary. Values are the tile ids of the target game.
const (
	Empty    Block = 0
	Hookable Block = 1
	Freeze   Block = 9
	Start    Block = 33
	Finish   Block = 34
	Spawn    Block = 192
	Flood    Block = 999
)

var blockNames = map[Block]string{
	Empty:    "empty",
	Hookable: "hookable",
	Freeze:   "freeze",
	Start:    "start",
	Finish:   "finish",
	Spawn:    "spawn",
	Flood:    "flood",
}

// Blocks returns the vocabulary in ascending value order.
func Blocks() []Block {
	return []Block{Empty, Hookable, Freeze, Start, Finish, Spawn, Flood}
}

// String returns the block name, or "block(<n>)" outside the vocabulary.
func (b Block) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return "block(" + strconv.Itoa(int(b)) + ")"
}

// ParseBlock resolves a block name as returned by String.
func ParseBlock(name string) (Block, error) {
	for b, n := range blockNames {
		if n == name {
			return b, nil
		}
	}
	return 0, ErrUnknownBlock
}

// Cell is a grid position.
type Cell struct {
	X, Y int
}
