package chunkgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for chunkgrid operations.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("chunkgrid: width and height must be positive")
	// ErrGridTooLarge indicates the cell count overflows the int32 index space.
	ErrGridTooLarge = errors.New("chunkgrid: grid too large")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("chunkgrid: coordinate out of bounds")
	// ErrSeedTaken indicates another region is already anchored at the coordinate.
	ErrSeedTaken = errors.New("chunkgrid: seed coordinate already taken")
	// ErrRegionNotFound indicates an id with no registered region.
	ErrRegionNotFound = errors.New("chunkgrid: region not found")
	// ErrCellUnassigned indicates a region lookup on a cell nobody owns.
	ErrCellUnassigned = errors.New("chunkgrid: cell has no region")
)

// Unset marks an unowned cell in both the region and hop arrays.
const Unset = -1

// maxCells bounds W×H so every index and hop fits an int32.
const maxCells = 1<<31 - 1

// RegionID identifies a region within one Grid. Ids start at 0.
type RegionID int32

// NoRegion is the RegionID stored for unowned cells.
const NoRegion RegionID = Unset

// Coord is an (X, Y) cell position; X grows east, Y grows south.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// L1 returns the Manhattan distance between c and o.
func (c Coord) L1(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// SquaredL2 returns the squared Euclidean distance between c and o.
func (c Coord) SquaredL2(o Coord) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	return dx*dx + dy*dy
}

// LInf returns the Chebyshev distance between c and o.
func (c Coord) LInf(o Coord) int {
	dx, dy := abs(c.X-o.X), abs(c.Y-o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Size is the width and height of a grid in cells.
type Size struct {
	Width, Height int
}

// Cells returns Width×Height.
func (s Size) Cells() int {
	return s.Width * s.Height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
