package gomoku

import "iter"

// Board is the read-only view of a position used by the evaluator.
type Board interface {
	Size() int
	At(x, y int) Cell
}

// GameState owns the grid, the move history and the side to move.
// It is not safe for concurrent use: callers serialize access per game.
type GameState struct {
	size    int
	grid    []Cell
	history []Move
	player  Player
}

func New(boardSize int) *GameState {
	if boardSize <= 0 {
		boardSize = DefaultBoardSize
	}

	state := &GameState{size: boardSize}
	state.Reset()

	return state
}

// Replay - builds a state by applying moves in order, advancing the turn after each one.
// It stops at the first move that cannot be placed and reports how many were applied.
func Replay(boardSize int, moves []Move) (*GameState, int) {
	state := New(boardSize)

	for i, move := range moves {
		if !state.ApplyMove(move) {
			return state, i
		}
		state.ChangeSide()
	}

	return state, len(moves)
}

func (that *GameState) Reset() {
	that.grid = make([]Cell, that.size*that.size)
	that.history = nil
	that.player = Black
}

func (that *GameState) Size() int {
	return that.size
}

// Player - returns the side to move.
func (that *GameState) Player() Player {
	return that.player
}

// ChangeSide - advances the turn. ApplyMove never does this on its own.
func (that *GameState) ChangeSide() {
	that.player = that.player.Opponent()
}

func (that *GameState) IsValidCoordinate(x, y int) bool {
	return x >= 0 && x < that.size && y >= 0 && y < that.size
}

// At - returns CellOutOfRange for coordinates outside the board.
func (that *GameState) At(x, y int) Cell {
	if !that.IsValidCoordinate(x, y) {
		return CellOutOfRange
	}
	return that.grid[that.index(x, y)]
}

func (that *GameState) IsEmptyCell(x, y int) bool {
	return that.At(x, y) == CellEmpty
}

func (that *GameState) CanPlace(move Move) bool {
	return that.IsEmptyCell(move.X, move.Y)
}

// ApplyMove - places the mover's stone and records the move.
// The mover is move.Player, or the side to move when it is unset.
func (that *GameState) ApplyMove(move Move) bool {
	if !that.CanPlace(move) {
		return false
	}

	if !move.Player.IsValid() {
		move.Player = that.player
	}

	that.grid[that.index(move.X, move.Y)] = move.Player.Cell()
	that.history = append(that.history, move)

	return true
}

// UndoLastMove - removes the most recent stone and gives the turn back to the player who placed it.
func (that *GameState) UndoLastMove() (Move, bool) {
	if len(that.history) == 0 {
		return Move{}, false
	}

	last := that.history[len(that.history)-1]
	that.history = that.history[:len(that.history)-1]
	that.grid[that.index(last.X, last.Y)] = CellEmpty
	that.player = last.Player

	return last, true
}

func (that *GameState) IsFull() bool {
	for _, cell := range that.grid {
		if cell == CellEmpty {
			return false
		}
	}
	return true
}

// CheckFiveInRow - true if the line through (x, y) holds at least five stones of player
// in any of the four directions. At most four steps are scanned on each side.
func (that *GameState) CheckFiveInRow(x, y int, player Player) bool {
	if !player.IsValid() {
		return false
	}

	target := player.Cell()
	if that.At(x, y) != target {
		return false
	}

	for _, dir := range directions {
		count := 1
		count += that.countDirection(x, y, dir[0], dir[1], target)
		count += that.countDirection(x, y, -dir[0], -dir[1], target)

		if count >= WinLength {
			return true
		}
	}

	return false
}

// Status - terminal status after a move at (x, y). A five for the stone at (x, y)
// wins even when the same move fills the board.
func (that *GameState) Status(x, y int) Status {
	if mover := that.At(x, y); mover == CellBlack || mover == CellWhite {
		player := Player(mover)
		if that.CheckFiveInRow(x, y, player) {
			return winStatus(player)
		}
	}

	if that.IsFull() {
		return StatusDraw
	}

	return StatusPlaying
}

// Cells - every cell in row-major order.
func (that *GameState) Cells() iter.Seq[CellInfo] {
	return func(yield func(CellInfo) bool) {
		for x := 0; x < that.size; x++ {
			for y := 0; y < that.size; y++ {
				if !yield(CellInfo{X: x, Y: y, Value: that.grid[that.index(x, y)]}) {
					return
				}
			}
		}
	}
}

func (that *GameState) EmptyCells() []Move {
	empty := make([]Move, 0, len(that.grid)-len(that.history))
	for cell := range that.Cells() {
		if cell.Value == CellEmpty {
			empty = append(empty, NewMove(cell.X, cell.Y))
		}
	}
	return empty
}

func (that *GameState) History() []Move {
	return append(make([]Move, 0, len(that.history)), that.history...)
}

func (that *GameState) MoveCount() int {
	return len(that.history)
}

func (that *GameState) LastMove() (Move, bool) {
	if len(that.history) == 0 {
		return Move{}, false
	}
	return that.history[len(that.history)-1], true
}

// Rows - board as [x][y] slices, for clients that render it.
func (that *GameState) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for x := range rows {
		rows[x] = append([]Cell(nil), that.grid[x*that.size:(x+1)*that.size]...)
	}
	return rows
}

func (that *GameState) Clone() *GameState {
	return &GameState{
		size:    that.size,
		grid:    append([]Cell(nil), that.grid...),
		history: append([]Move(nil), that.history...),
		player:  that.player,
	}
}

func (that *GameState) countDirection(x, y, dx, dy int, target Cell) int {
	count := 0
	for step := 1; step < WinLength; step++ {
		if that.At(x+dx*step, y+dy*step) != target {
			break
		}
		count++
	}
	return count
}

func (that *GameState) index(x, y int) int {
	return x*that.size + y
}
