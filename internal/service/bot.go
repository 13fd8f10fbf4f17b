package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	ChooseMove(state *gomoku.GameState, own gomoku.Player) (gomoku.Move, error)
	MakeTurn(game *entity.Game) (gomoku.Move, error)
}

type botService struct {
	bias float64
}

// NewBotService - bias weights the bot's own score against the opponent's.
func NewBotService(bias float64) BotService {
	return &botService{bias: bias}
}

// ChooseMove - the highest scoring empty cell in row-major order, the first one wins ties.
func (that *botService) ChooseMove(state *gomoku.GameState, own gomoku.Player) (gomoku.Move, error) {
	evaluator := gomoku.NewEvaluator(own, that.bias)

	var (
		best      gomoku.Move
		bestScore = math.Inf(-1)
		found     bool
	)

	for cell := range state.Cells() {
		if cell.Value != gomoku.CellEmpty {
			continue
		}

		if score := evaluator.Evaluate(state, cell.X, cell.Y); score > bestScore {
			best = gomoku.Move{X: cell.X, Y: cell.Y, Player: own}
			bestScore, found = score, true
		}
	}

	if !found {
		return gomoku.Move{}, ErrNoAvailableMoves
	}

	return best, nil
}

func (that *botService) MakeTurn(game *entity.Game) (gomoku.Move, error) {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return gomoku.Move{}, ErrBotNotFound
	}

	move, err := that.ChooseMove(game.State(), botPlayer.Color)
	if err != nil {
		return gomoku.Move{}, err
	}

	if err = game.MakeTurn(botPlayer.Color, move.X, move.Y); err != nil {
		return gomoku.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}
