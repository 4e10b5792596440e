package game

import (
	"fanorona/utils"
	"strings"
)

// Board is the 9x5 grid indexed [x][y]. It is a plain array so assignment
// copies it; search branches never share a board.
type Board [Width][Height]Color

// NewBoard returns the starting layout: rows 0-1 Red, rows 3-4 Green, and the
// middle row split with Green on the left, Red on the right and the center
// cell empty.
func NewBoard() Board {
	var b Board
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			switch {
			case y <= 1:
				b[x][y] = Red
			case y >= 3:
				b[x][y] = Green
			case x <= 3:
				b[x][y] = Green
			case x >= 5:
				b[x][y] = Red
			default:
				b[x][y] = Empty
			}
		}
	}
	return b
}

func (b Board) At(c Coord) Color {
	return b[c.X][c.Y]
}

func (b *Board) Set(c Coord, v Color) {
	b[c.X][c.Y] = v
}

// Tokens counts the cells owned by player.
func (b *Board) Tokens(player Color) int {
	count := 0
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b[x][y] == player {
				count++
			}
		}
	}
	return count
}

// EmptyAdjacentValidTiles returns the empty neighbors a token on c may move
// to: orthogonal ones always, diagonal ones only from a black tile.
func (b *Board) EmptyAdjacentValidTiles(c Coord) []Coord {
	diagonal := TileColor(c.X, c.Y).AllowsDiagonal()
	var tiles []Coord
	for _, d := range Directions {
		if d.IsDiagonal() && !diagonal {
			continue
		}
		n := c.Step(d)
		if n.InBounds() && b.At(n) == Empty {
			tiles = append(tiles, n)
		}
	}
	return tiles
}

// EmptyAdjacentInvalidTiles returns the empty diagonal neighbors of a white
// tile, which are empty but unreachable from c. It is always empty for black
// tiles.
func (b *Board) EmptyAdjacentInvalidTiles(c Coord) []Coord {
	if TileColor(c.X, c.Y).AllowsDiagonal() {
		return nil
	}
	var tiles []Coord
	for _, d := range Directions {
		if !d.IsDiagonal() {
			continue
		}
		n := c.Step(d)
		if n.InBounds() && b.At(n) == Empty {
			tiles = append(tiles, n)
		}
	}
	return tiles
}

func (b *Board) IsLegalMove(from, to Coord) bool {
	if !from.InBounds() {
		return false
	}
	return utils.Contains(b.EmptyAdjacentValidTiles(from), to)
}

// LegalMoves enumerates every move available to player, scanning columns
// left to right and each column top to bottom, neighbors clockwise from North.
func (b *Board) LegalMoves(player Color) []Move {
	var moves []Move
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b[x][y] != player {
				continue
			}
			from := Coord{x, y}
			for _, to := range b.EmptyAdjacentValidTiles(from) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// TokenStreak returns the longest unbroken run of player's tokens leading
// away from c in any single direction. c itself is not counted.
func (b *Board) TokenStreak(c Coord, player Color) int {
	longest := 0
	for _, d := range Directions {
		count := 0
		for n := c.Step(d); n.InBounds() && b.At(n) == player; n = n.Step(d) {
			count++
		}
		longest = max(longest, count)
	}
	return longest
}

// String renders the board row by row using G, R and X for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			sb.WriteString(b[x][y].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
