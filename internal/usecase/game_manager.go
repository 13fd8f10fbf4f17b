package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
)

var ErrUnknownGameType = errors.New("unknown game type")

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID, gameType string, color gomoku.Player) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, x, y int) (*entity.Game, error)
	UndoTurn(ctx context.Context, playerID string) (*entity.Game, error)

	ScoreGrid(ctx context.Context, playerID string) ([][]float64, *entity.Game, error)
	GameScores(ctx context.Context, gameID string) ([][]float64, error)

	GetGameByID(ctx context.Context, gameID string) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
}

var _ GameUseCase = (*GameManager)(nil)

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botServiceDep interface {
	MakeTurn(game *entity.Game) (gomoku.Move, error)
}

type Options struct {
	BoardSize int
	AIBias    float64
}

type GameManager struct {
	logger *slog.Logger

	playerRepo playerRepoDep
	gameRepo   gameRepoDep
	botService botServiceDep

	options Options
	locks   *gameLocks
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepoDep, gameRepo gameRepoDep, botService botServiceDep, options Options) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		botService: botService,

		options: options,
		locks:   newGameLocks(),
	}
}

// GetOrCreatePlayer - an empty id registers a new player, an unknown id is registered as is.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		id = uuid.NewString()
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if err == nil {
		return player, nil
	}

	if !errors.Is(err, repository.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	player = &entity.Player{ID: id}
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

// GetOrCreateGame - the player's current game, or a new one of gameType.
// For bot games color is the human's side, NoPlayer picks it at random.
func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID, gameType string, color gomoku.Player) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	current, err := that.currentGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if current != nil {
		return current, nil
	}

	game, err := that.createGame(ctx, player, gameType, color)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player, gameType string, color gomoku.Player) (*entity.Game, error) {
	if gameType != entity.PrivateType && gameType != entity.WithBotType {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGameType, gameType)
	}

	game := entity.NewGame(uuid.NewString(), gameType, that.options.BoardSize)

	defer that.locks.Lock(game.ID)()

	player.GameID = game.ID
	player.Color = gomoku.Black
	game.Players = []*entity.Player{player}

	if game.IsWithBot() {
		if err := that.addBotToGame(game, player, color); err != nil {
			return nil, err
		}
	}

	if err := that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	if err := that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "gameID", game.ID, "type", game.Type, "playerID", player.ID)

	return game, nil
}

func (that *GameManager) addBotToGame(game *entity.Game, player *entity.Player, color gomoku.Player) error {
	if !color.IsValid() {
		color, _ = game.GetRandomColors()
	}

	player.Color = color
	game.Players = append(game.Players, entity.NewBotPlayer(game.ID, color.Opponent()))
	game.Status = entity.StatusOngoing

	if color == gomoku.White {
		if _, err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	return nil
}

// JoinGame - seats the player as White in a waiting private game.
func (that *GameManager) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	defer that.locks.Lock(gameID)()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == game.ID {
		return game, nil
	}

	current, err := that.currentGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if current != nil {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrAlreadyInGame, current.ID)
	}

	if game.IsWithBot() || len(game.Players) >= 2 {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, gameID)
	}

	player.GameID = game.ID
	player.Color = gomoku.White
	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	game.Status = entity.StatusOngoing
	game.Players = append(game.Players, player)
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// MakeTurn - plays (x, y) for the player; in bot games the bot replies within the same call.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, x, y int) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, repository.ErrGameNotFound
	}

	defer that.locks.Lock(player.GameID)()

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(player.Color, x, y); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() && game.IsWithBot() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		that.releasePlayers(ctx, game)
	}

	return game, nil
}

// UndoTurn - takes back the player's last move. In bot games the bot's reply is taken back too.
func (that *GameManager) UndoTurn(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, repository.ErrGameNotFound
	}

	defer that.locks.Lock(player.GameID)()

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	count := undoCount(game, player.Color)
	if count == 0 {
		return game, apperror.ErrNothingToUndo
	}

	game.UndoTurns(count)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// undoCount - how many moves to pop so that the player's last move is removed.
// Against a human only an immediate takeback is allowed.
func undoCount(game *entity.Game, color gomoku.Player) int {
	for i := len(game.Moves) - 1; i >= 0; i-- {
		count := len(game.Moves) - i
		if game.Moves[i].Player == color {
			return count
		}
		if !game.IsWithBot() {
			return 0
		}
	}
	return 0
}

// ScoreGrid - evaluation of every cell from the player's point of view.
func (that *GameManager) ScoreGrid(ctx context.Context, playerID string) ([][]float64, *entity.Game, error) {
	game, err := that.GetGameByPlayerID(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}

	player := game.PlayerByID(playerID)
	if player == nil {
		return nil, nil, fmt.Errorf("player %s is not seated in game %s", playerID, game.ID)
	}

	evaluator := gomoku.NewEvaluator(player.Color, that.options.AIBias)

	return evaluator.ScoreGrid(game.State()), game, nil
}

// GameScores - evaluation of every cell for the side to move.
func (that *GameManager) GameScores(ctx context.Context, gameID string) ([][]float64, error) {
	game, err := that.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	evaluator := gomoku.NewEvaluator(game.Turn, that.options.AIBias)

	return evaluator.ScoreGrid(game.State()), nil
}

func (that *GameManager) GetGameByID(ctx context.Context, gameID string) (*entity.Game, error) {
	defer that.locks.Lock(gameID)()

	return that.getGameByID(ctx, gameID)
}

func (that *GameManager) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, repository.ErrGameNotFound
	}

	return that.GetGameByID(ctx, player.GameID)
}

// LeaveGame - the leaving player forfeits an ongoing game, a waiting game is dropped.
func (that *GameManager) LeaveGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, repository.ErrGameNotFound
	}

	defer that.locks.Lock(player.GameID)()

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, err
	}

	switch {
	case game.IsWaiting():
		if err = that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
			return nil, fmt.Errorf("failed to delete game: %w", err)
		}
	case game.IsOngoing():
		game.Forfeit(player.Color)
		if err = that.updateGame(ctx, game); err != nil {
			return nil, err
		}
	}

	that.releasePlayers(ctx, game)

	return game, nil
}

// releasePlayers - detaches everyone from a game that is over.
func (that *GameManager) releasePlayers(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "releasePlayers", "gameID", game.ID)

	for _, seated := range game.Players {
		if seated.IsBot() {
			continue
		}

		player := *seated
		player.LeaveGame()

		if err := that.updatePlayer(ctx, &player); err != nil {
			log.Error("failed to release player", "playerID", player.ID, "error", err)
		}
	}

	log.Info("game over", "status", game.Status, "winner", game.Winner)
}

// currentGame - the unfinished game the player is seated in, nil when there is none.
func (that *GameManager) currentGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	if player.GameID == "" {
		return nil, nil //nolint: nilnil // no current game
	}

	game, err := that.getGameByID(ctx, player.GameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, nil //nolint: nilnil // expired game
	}

	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		return nil, nil //nolint: nilnil // finished game
	}

	return game, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
