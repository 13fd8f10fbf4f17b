package entity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	WinnerBlack = "black"
	WinnerWhite = "white"
	WinnerDraw  = "-"
)

const (
	PrivateType = "private"
	WithBotType = "bot"
)

// Game is the persisted aggregate. The board is never stored: it is rebuilt from Moves.
type Game struct {
	ID        string        `json:"id"`
	Type      string        `json:"type,omitempty"`
	BoardSize int           `json:"board_size"`
	Moves     []gomoku.Move `json:"moves"`
	Status    string        `json:"status"`
	Winner    string        `json:"winner,omitempty"`
	Turn      gomoku.Player `json:"turn,omitempty"`
	Players   []*Player     `json:"players,omitempty"`
	CreatedAt time.Time     `json:"created_at"`

	state *gomoku.GameState
}

func NewGame(id, gameType string, boardSize int) *Game {
	if boardSize <= 0 {
		boardSize = gomoku.DefaultBoardSize
	}

	return &Game{
		ID:        id,
		Type:      gameType,
		BoardSize: boardSize,
		Moves:     []gomoku.Move{},
		Status:    StatusWaiting,
		Turn:      gomoku.Black,
		CreatedAt: time.Now().UTC(),
	}
}

// State - the engine position for the recorded moves. The returned value is shared with
// the game, callers must not mutate it outside of MakeTurn/UndoTurns.
func (that *Game) State() *gomoku.GameState {
	if that.state == nil || that.state.MoveCount() != len(that.Moves) {
		that.state, _ = gomoku.Replay(that.BoardSize, that.Moves)
	}

	return that.state
}

// Board - cells indexed [x][y] for rendering.
func (that *Game) Board() [][]gomoku.Cell {
	return that.State().Rows()
}

func (that *Game) MakeTurn(color gomoku.Player, x, y int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	state := that.State()

	if !state.IsValidCoordinate(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, x, y)
	}

	if that.Turn != color {
		return apperror.ErrNotYourTurn
	}

	move := gomoku.Move{X: x, Y: y, Player: color}
	if !state.ApplyMove(move) {
		return apperror.ErrCellOccupied
	}

	that.Moves = append(that.Moves, move)
	that.UpdateGameState(x, y)

	return nil
}

// UpdateGameState - derives status and winner from the move at (x, y) and passes the turn.
func (that *Game) UpdateGameState(x, y int) {
	state := that.State()

	switch state.Status(x, y) {
	case gomoku.StatusBlackWin:
		that.finish(WinnerBlack)
	case gomoku.StatusWhiteWin:
		that.finish(WinnerWhite)
	case gomoku.StatusDraw:
		that.finish(WinnerDraw)
	default:
		state.ChangeSide()
		that.Turn = state.Player()
		that.Status = StatusOngoing
	}
}

// Forfeit - the loser leaves an ongoing game, the opponent takes it.
func (that *Game) Forfeit(loser gomoku.Player) {
	switch loser.Opponent() {
	case gomoku.Black:
		that.finish(WinnerBlack)
	case gomoku.White:
		that.finish(WinnerWhite)
	default:
		that.finish(WinnerDraw)
	}
}

func (that *Game) finish(winner string) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = gomoku.NoPlayer
}

// UndoTurns - takes back up to n moves of an ongoing game and returns how many were removed.
func (that *Game) UndoTurns(n int) int {
	state := that.State()

	undone := 0
	for ; undone < n; undone++ {
		if _, ok := state.UndoLastMove(); !ok {
			break
		}
	}

	that.Moves = state.History()
	that.Turn = state.Player()

	return undone
}

func (that *Game) LastMove() (gomoku.Move, bool) {
	return that.State().LastMove()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

func (that *Game) PlayerByID(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}
	return nil
}

// GetRandomColors - colors for the creator and the opponent.
func (that *Game) GetRandomColors() (gomoku.Player, gomoku.Player) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return gomoku.Black, gomoku.White
	}
	return gomoku.White, gomoku.Black
}
