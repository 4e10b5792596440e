package game

import "fmt"

// Coord addresses a cell; X is the column (0..Width-1), Y the row (0..Height-1).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

func (c Coord) Step(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit offset between two neighboring cells. North is y-1.
type Direction struct {
	DX, DY int
}

var (
	North     = Direction{0, -1}
	NorthEast = Direction{1, -1}
	East      = Direction{1, 0}
	SouthEast = Direction{1, 1}
	South     = Direction{0, 1}
	SouthWest = Direction{-1, 1}
	West      = Direction{-1, 0}
	NorthWest = Direction{-1, -1}
)

// Directions lists the compass offsets clockwise from North. Neighbor
// enumeration follows this order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func (d Direction) IsDiagonal() bool {
	return d.DX != 0 && d.DY != 0
}

func (d Direction) Reverse() Direction {
	return Direction{-d.DX, -d.DY}
}

// DirectionBetween returns the offset from one cell to an adjacent one.
func DirectionBetween(from, to Coord) (Direction, bool) {
	d := Direction{to.X - from.X, to.Y - from.Y}
	if d.DX < -1 || d.DX > 1 || d.DY < -1 || d.DY > 1 || (d.DX == 0 && d.DY == 0) {
		return Direction{}, false
	}
	return d, true
}

// Tile is the checkerboard color of a cell.
type Tile bool

const (
	Black Tile = false // (x+y) even: diagonal moves allowed
	White Tile = true  // (x+y) odd: orthogonal moves only
)

func TileColor(x, y int) Tile {
	return (x+y)%2 != 0
}

func (t Tile) AllowsDiagonal() bool {
	return t == Black
}

func (t Tile) String() string {
	if t == White {
		return "white"
	}
	return "black"
}
