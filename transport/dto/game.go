package dto

import (
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

// GameView is the client facing snapshot of a game, without the seating details.
type GameView struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Winner    string          `json:"winner,omitempty"`
	Turn      gomoku.Player   `json:"turn,omitempty"`
	BoardSize int             `json:"board_size"`
	Board     [][]gomoku.Cell `json:"board"`
	LastMove  *gomoku.Move    `json:"last_move,omitempty"`
	MoveCount int             `json:"move_count"`
	WithBot   bool            `json:"with_bot,omitempty"`
}

func NewGameView(game *entity.Game) *GameView {
	view := &GameView{
		ID:        game.ID,
		Status:    game.Status,
		Winner:    game.Winner,
		Turn:      game.Turn,
		BoardSize: game.BoardSize,
		Board:     game.Board(),
		MoveCount: len(game.Moves),
		WithBot:   game.IsWithBot(),
	}

	if move, ok := game.LastMove(); ok {
		view.LastMove = &move
	}

	return view
}

// ScoresView is the evaluation overlay of a game, indexed [x][y].
type ScoresView struct {
	GameID string      `json:"game_id"`
	Scores [][]float64 `json:"scores"`
}
