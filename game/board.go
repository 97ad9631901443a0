package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Connect is the number of discs in a row needed to win.
const Connect = 4

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrBadBoard    = errors.New("malformed board")
)

// Board is a Connect Four position. Each column is a stack of discs from the
// bottom up. The side to move is derived from the disc counts, so a Board can
// never disagree with itself about whose turn it is.
type Board struct {
	width    int
	height   int
	columns  [][]Player
	evaluate Evaluate
}

// NewBoard returns an empty width x height board scored by EvaluateWindows.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	columns := make([][]Player, width)
	for i := range columns {
		columns[i] = make([]Player, 0, height)
	}
	return &Board{
		width:    width,
		height:   height,
		columns:  columns,
		evaluate: EvaluateWindows,
	}
}

// NewBoardFromMoves replays a sequence of columns on an empty board.
func NewBoardFromMoves(width, height int, moves []int) (*Board, error) {
	b := NewBoard(width, height)
	for i, column := range moves {
		next, err := b.Drop(column)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		b = next
	}
	return b, nil
}

// WithEvaluation returns a copy of b that uses evaluate for Heuristic.
func (b *Board) WithEvaluation(evaluate Evaluate) *Board {
	c := b.Copy()
	if evaluate != nil {
		c.evaluate = evaluate
	}
	return c
}

func (b *Board) Copy() *Board {
	columns := make([][]Player, b.width)
	for i, col := range b.columns {
		columns[i] = make([]Player, len(col), b.height)
		copy(columns[i], col)
	}
	return &Board{
		width:    b.width,
		height:   b.height,
		columns:  columns,
		evaluate: b.evaluate,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Cell returns the disc at column, row (row 0 is the bottom), or None.
func (b *Board) Cell(column, row int) Player {
	if column < 0 || column >= b.width || row < 0 || row >= len(b.columns[column]) {
		return None
	}
	return b.columns[column][row]
}

// Discs is the number of discs on the board.
func (b *Board) Discs() int {
	return lo.SumBy(b.columns, func(col []Player) int { return len(col) })
}

// ToMove is the side whose turn it is.
func (b *Board) ToMove() Player {
	if b.Discs()%2 == 0 {
		return First
	}
	return Second
}

func (b *Board) CanPlay(column int) bool {
	return column >= 0 && column < b.width && len(b.columns[column]) < b.height
}

// LegalColumns lists the playable columns in increasing order.
func (b *Board) LegalColumns() []int {
	return lo.Filter(lo.Range(b.width), func(column int, _ int) bool {
		return b.CanPlay(column)
	})
}

// Drop returns the board after the side to move plays column.
func (b *Board) Drop(column int) (*Board, error) {
	if !b.CanPlay(column) {
		return nil, fmt.Errorf("%w: column %d", ErrIllegalMove, column)
	}
	player := b.ToMove()
	next := b.Copy()
	next.columns[column] = append(next.columns[column], player)
	return next, nil
}

// Play implements Position. Callers must only play columns for which CanPlay
// holds.
func (b *Board) Play(column int) Position {
	next, err := b.Drop(column)
	if err != nil {
		panic(err)
	}
	return next
}

func (b *Board) IsFull() bool {
	for _, col := range b.columns {
		if len(col) < b.height {
			return false
		}
	}
	return true
}

// Winner returns the player with Connect discs in a row, or None.
func (b *Board) Winner() Player {
	for _, w := range b.windows() {
		if owner := b.windowOwner(w); owner != None {
			counts := b.windowCount(w, owner)
			if counts == Connect {
				return owner
			}
		}
	}
	return None
}

func (b *Board) IsGoal() float64 {
	switch b.Winner() {
	case First:
		return FirstWins
	case Second:
		return SecondWins
	}
	if b.IsFull() {
		return Draw
	}
	return NotGoal
}

// Heuristic is the goal value for finished games and the board's evaluation
// otherwise.
func (b *Board) Heuristic() float64 {
	if g := b.IsGoal(); g >= 0 {
		return g
	}
	evaluate := b.evaluate
	if evaluate == nil {
		evaluate = EvaluateWindows
	}
	return clamp(evaluate(b))
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := b.height - 1; row >= 0; row-- {
		sb.WriteByte('|')
		for column := 0; column < b.width; column++ {
			switch b.Cell(column, row) {
			case First:
				sb.WriteByte('X')
			case Second:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteByte(' ')
	for column := 0; column < b.width; column++ {
		sb.WriteString(fmt.Sprint(column % 10))
	}
	sb.WriteByte('\n')
	return sb.String()
}

type boardJSON struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Columns [][]Player `json:"columns"`
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{
		Width:   b.width,
		Height:  b.height,
		Columns: b.columns,
	})
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrBadBoard, raw.Width, raw.Height)
	}
	if len(raw.Columns) != raw.Width {
		return fmt.Errorf("%w: %d columns for width %d", ErrBadBoard, len(raw.Columns), raw.Width)
	}
	firsts, seconds := 0, 0
	for i, col := range raw.Columns {
		if len(col) > raw.Height {
			return fmt.Errorf("%w: column %d overflows height %d", ErrBadBoard, i, raw.Height)
		}
		for _, p := range col {
			switch p {
			case First:
				firsts++
			case Second:
				seconds++
			default:
				return fmt.Errorf("%w: column %d holds %v", ErrBadBoard, i, p)
			}
		}
	}
	if firsts != seconds && firsts != seconds+1 {
		return fmt.Errorf("%w: %d first and %d second discs", ErrBadBoard, firsts, seconds)
	}

	decoded := NewBoard(raw.Width, raw.Height)
	for i, col := range raw.Columns {
		decoded.columns[i] = append(decoded.columns[i], col...)
	}
	if err := decoded.checkWin(); err != nil {
		return err
	}
	*b = *decoded
	return nil
}

// connects reports whether player has Connect discs in a row.
func (b *Board) connects(player Player) bool {
	for _, w := range b.windows() {
		if b.windowCount(w, player) == Connect {
			return true
		}
	}
	return false
}

// checkWin rejects boards no game can reach: both sides connected, or play
// went on after the winning disc.
func (b *Board) checkWin() error {
	firstWon, secondWon := b.connects(First), b.connects(Second)
	if firstWon && secondWon {
		return fmt.Errorf("%w: both players connect %d", ErrBadBoard, Connect)
	}
	winner := None
	switch {
	case firstWon:
		winner = First
	case secondWon:
		winner = Second
	default:
		return nil
	}
	if b.ToMove() == winner {
		return fmt.Errorf("%w: %s moved after %s won", ErrBadBoard, winner, winner)
	}
	// The winning disc must be on top of a column and be the only way to the win.
	for column, col := range b.columns {
		if len(col) == 0 || col[len(col)-1] != winner {
			continue
		}
		before := b.Copy()
		before.columns[column] = before.columns[column][:len(col)-1]
		if !before.connects(winner) {
			return nil
		}
	}
	return fmt.Errorf("%w: play continued after %s won", ErrBadBoard, winner)
}

func clamp(score float64) float64 {
	const epsilon = 1.0
	return min(max(score, SecondWins+epsilon), FirstWins-epsilon)
}
