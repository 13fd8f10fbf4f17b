package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	mockedUseCase "github.com/rocketscienceinc/gomoku-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

type testDeps struct {
	playerRepo *mockedUseCase.MockplayerRepoDep
	gameRepo   *mockedUseCase.MockgameRepoDep
	bot        *mockedUseCase.MockbotServiceDep
}

func newTestManager(t *testing.T) (*GameManager, testDeps) {
	t.Helper()

	deps := testDeps{
		playerRepo: mockedUseCase.NewMockplayerRepoDep(t),
		gameRepo:   mockedUseCase.NewMockgameRepoDep(t),
		bot:        mockedUseCase.NewMockbotServiceDep(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := NewGameManager(logger, deps.playerRepo, deps.gameRepo, deps.bot, Options{
		BoardSize: gomoku.DefaultBoardSize,
		AIBias:    gomoku.DefaultBias,
	})

	return manager, deps
}

// botPlays - bot stub that answers with a fixed cell.
func botPlays(x, y int) func(*entity.Game) (gomoku.Move, error) {
	return func(game *entity.Game) (gomoku.Move, error) {
		bot := game.BotPlayer()
		if err := game.MakeTurn(bot.Color, x, y); err != nil {
			return gomoku.Move{}, err
		}
		return gomoku.Move{X: x, Y: y, Player: bot.Color}, nil
	}
}

func newBotGame(t *testing.T, human *entity.Player) *entity.Game {
	t.Helper()

	game := entity.NewGame("g1", entity.WithBotType, gomoku.DefaultBoardSize)
	game.Status = entity.StatusOngoing
	human.GameID, human.Color = game.ID, gomoku.Black
	game.Players = []*entity.Player{human, entity.NewBotPlayer(game.ID, gomoku.White)}

	return game
}

func newPrivateGame(t *testing.T, black, white *entity.Player) *entity.Game {
	t.Helper()

	game := entity.NewGame("g2", entity.PrivateType, gomoku.DefaultBoardSize)
	game.Status = entity.StatusOngoing
	black.GameID, black.Color = game.ID, gomoku.Black
	white.GameID, white.Color = game.ID, gomoku.White
	game.Players = []*entity.Player{black, white}

	return game
}

func TestGameManager_GetOrCreatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new player when playerID is empty", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.playerRepo.EXPECT().
			GetByID(mock.Anything, mock.AnythingOfType("string")).
			Return(nil, repository.ErrPlayerNotFound).
			Once()
		deps.playerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(nil).
			Once()

		// When: Calling GetOrCreatePlayer with an empty playerID
		player, err := manager.GetOrCreatePlayer(ctx, "")

		// Then: a player with a generated ID is returned
		require.NoError(t, err)
		assert.NotEmpty(t, player.ID)
		assert.Empty(t, player.GameID)
	})

	t.Run("Returns existing player", func(t *testing.T) {
		manager, deps := newTestManager(t)

		existing := &entity.Player{ID: "player123", GameID: "g1"}
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "player123").Return(existing, nil).Once()

		player, err := manager.GetOrCreatePlayer(ctx, "player123")

		require.NoError(t, err)
		assert.Equal(t, existing, player)
	})

	t.Run("Registers an unknown ID as is", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "lost").Return(nil, repository.ErrPlayerNotFound).Once()
		deps.playerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, &entity.Player{ID: "lost"}).
			Return(nil).
			Once()

		player, err := manager.GetOrCreatePlayer(ctx, "lost")

		require.NoError(t, err)
		assert.Equal(t, "lost", player.ID)
	})

	t.Run("Returns error if repository fails", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(nil, errRedisDown).Once()

		player, err := manager.GetOrCreatePlayer(ctx, "p1")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, player)
	})
}

func TestGameManager_GetOrCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Bot game with the human playing Black", func(t *testing.T) {
		manager, deps := newTestManager(t)

		// Given: a player without a game
		player := &entity.Player{ID: "p1"}
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, player).Return(nil).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: a bot game is requested as Black
		game, err := manager.GetOrCreateGame(ctx, "p1", entity.WithBotType, gomoku.Black)

		// Then: the game starts right away, the bot sits as White and has not moved
		require.NoError(t, err)
		assert.True(t, game.IsOngoing())
		assert.Equal(t, gomoku.Black, game.Turn)
		assert.Empty(t, game.Moves)
		assert.Equal(t, game.ID, player.GameID)
		assert.Equal(t, gomoku.Black, player.Color)
		require.NotNil(t, game.BotPlayer())
		assert.Equal(t, gomoku.White, game.BotPlayer().Color)
	})

	t.Run("Bot opens when the human plays White", func(t *testing.T) {
		manager, deps := newTestManager(t)

		player := &entity.Player{ID: "p1"}
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, player).Return(nil).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		deps.bot.EXPECT().MakeTurn(mock.AnythingOfType("*entity.Game")).RunAndReturn(botPlays(7, 7)).Once()

		game, err := manager.GetOrCreateGame(ctx, "p1", entity.WithBotType, gomoku.White)

		require.NoError(t, err)
		assert.Equal(t, []gomoku.Move{{X: 7, Y: 7, Player: gomoku.Black}}, game.Moves)
		assert.Equal(t, gomoku.White, game.Turn)
		assert.Equal(t, gomoku.White, player.Color)
	})

	t.Run("Private game waits for an opponent", func(t *testing.T) {
		manager, deps := newTestManager(t)

		player := &entity.Player{ID: "p1"}
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, player).Return(nil).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		game, err := manager.GetOrCreateGame(ctx, "p1", entity.PrivateType, gomoku.NoPlayer)

		require.NoError(t, err)
		assert.True(t, game.IsWaiting())
		assert.Len(t, game.Players, 1)
		assert.Equal(t, gomoku.Black, player.Color)
	})

	t.Run("Returns the current game", func(t *testing.T) {
		manager, deps := newTestManager(t)

		player := &entity.Player{ID: "p1"}
		current := newBotGame(t, player)
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, current.ID).Return(current, nil).Once()

		game, err := manager.GetOrCreateGame(ctx, "p1", entity.PrivateType, gomoku.NoPlayer)

		require.NoError(t, err)
		assert.Same(t, current, game)
	})

	t.Run("Unknown game type", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&entity.Player{ID: "p1"}, nil).Once()

		game, err := manager.GetOrCreateGame(ctx, "p1", "ranked", gomoku.NoPlayer)

		require.ErrorIs(t, err, ErrUnknownGameType)
		assert.Nil(t, game)
	})
}

func TestGameManager_JoinGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Second player joins as White", func(t *testing.T) {
		manager, deps := newTestManager(t)

		// Given: a waiting private game
		owner := &entity.Player{ID: "p1", GameID: "g2", Color: gomoku.Black}
		game := entity.NewGame("g2", entity.PrivateType, gomoku.DefaultBoardSize)
		game.Players = []*entity.Player{owner}

		guest := &entity.Player{ID: "p2"}
		deps.gameRepo.EXPECT().GetByID(mock.Anything, "g2").Return(game, nil).Once()
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p2").Return(guest, nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, guest).Return(nil).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, game).Return(nil).Once()

		// When: the guest joins
		joined, err := manager.JoinGame(ctx, "g2", "p2")

		// Then: the game is ongoing with the guest as White
		require.NoError(t, err)
		assert.True(t, joined.IsOngoing())
		assert.Len(t, joined.Players, 2)
		assert.Equal(t, gomoku.White, guest.Color)
		assert.Equal(t, "g2", guest.GameID)
	})

	t.Run("Game is full", func(t *testing.T) {
		manager, deps := newTestManager(t)

		game := newPrivateGame(t, &entity.Player{ID: "p1"}, &entity.Player{ID: "p2"})
		deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p3").Return(&entity.Player{ID: "p3"}, nil).Once()

		_, err := manager.JoinGame(ctx, game.ID, "p3")

		require.ErrorIs(t, err, apperror.ErrGameIsFull)
	})

	t.Run("Player still seated in another game", func(t *testing.T) {
		manager, deps := newTestManager(t)

		// Given: p3 plays an ongoing bot game and g2 waits for a second player
		guest := &entity.Player{ID: "p3"}
		current := newBotGame(t, guest)

		owner := &entity.Player{ID: "p1", GameID: "g2", Color: gomoku.Black}
		game := entity.NewGame("g2", entity.PrivateType, gomoku.DefaultBoardSize)
		game.Players = []*entity.Player{owner}

		deps.gameRepo.EXPECT().GetByID(mock.Anything, "g2").Return(game, nil).Once()
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p3").Return(guest, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, current.ID).Return(current, nil).Once()

		// When: p3 tries to join g2
		_, err := manager.JoinGame(ctx, "g2", "p3")

		// Then: the join is refused and both games are untouched
		require.ErrorIs(t, err, apperror.ErrAlreadyInGame)
		assert.True(t, current.IsOngoing())
		assert.True(t, game.IsWaiting())
		assert.Len(t, game.Players, 1)
		assert.Equal(t, current.ID, guest.GameID)
	})

	t.Run("Finished previous game does not block the join", func(t *testing.T) {
		manager, deps := newTestManager(t)

		guest := &entity.Player{ID: "p3"}
		previous := newBotGame(t, guest)
		previous.Forfeit(guest.Color)

		owner := &entity.Player{ID: "p1", GameID: "g2", Color: gomoku.Black}
		game := entity.NewGame("g2", entity.PrivateType, gomoku.DefaultBoardSize)
		game.Players = []*entity.Player{owner}

		deps.gameRepo.EXPECT().GetByID(mock.Anything, "g2").Return(game, nil).Once()
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p3").Return(guest, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, previous.ID).Return(previous, nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, guest).Return(nil).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, game).Return(nil).Once()

		joined, err := manager.JoinGame(ctx, "g2", "p3")

		require.NoError(t, err)
		assert.True(t, joined.IsOngoing())
		assert.Equal(t, "g2", guest.GameID)
	})

	t.Run("Game not found", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, repository.ErrGameNotFound).Once()

		_, err := manager.JoinGame(ctx, "nope", "p3")

		require.ErrorIs(t, err, repository.ErrGameNotFound)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Bot replies in the same call", func(t *testing.T) {
		manager, deps := newTestManager(t)

		player := &entity.Player{ID: "p1"}
		game := newBotGame(t, player)
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()
		deps.bot.EXPECT().MakeTurn(game).RunAndReturn(botPlays(7, 8)).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, game).Return(nil).Once()

		// When: the human plays the center
		updated, err := manager.MakeTurn(ctx, "p1", 7, 7)

		// Then: both moves are recorded and it is the human's turn again
		require.NoError(t, err)
		assert.Equal(t, []gomoku.Move{
			{X: 7, Y: 7, Player: gomoku.Black},
			{X: 7, Y: 8, Player: gomoku.White},
		}, updated.Moves)
		assert.Equal(t, gomoku.Black, updated.Turn)
	})

	t.Run("Not your turn", func(t *testing.T) {
		manager, deps := newTestManager(t)

		black, white := &entity.Player{ID: "p1"}, &entity.Player{ID: "p2"}
		game := newPrivateGame(t, black, white)
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p2").Return(white, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()

		_, err := manager.MakeTurn(ctx, "p2", 7, 7)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Empty(t, game.Moves)
	})

	t.Run("Five in a row finishes the game and releases the players", func(t *testing.T) {
		manager, deps := newTestManager(t)

		// Given: Black has four in a row with the fifth cell open
		black, white := &entity.Player{ID: "p1"}, &entity.Player{ID: "p2"}
		game := newPrivateGame(t, black, white)
		for y := range 4 {
			require.NoError(t, game.MakeTurn(gomoku.Black, 0, y))
			require.NoError(t, game.MakeTurn(gomoku.White, 1, y))
		}

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(black, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, game).Return(nil).Once()
		deps.playerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(p *entity.Player) bool { return p.GameID == "" })).
			Return(nil).
			Twice()

		// When: Black completes the five
		updated, err := manager.MakeTurn(ctx, "p1", 0, 4)

		// Then: Black wins and nobody is seated anymore
		require.NoError(t, err)
		assert.True(t, updated.IsFinished())
		assert.Equal(t, entity.WinnerBlack, updated.Winner)
		assert.Equal(t, gomoku.NoPlayer, updated.Turn)
	})

	t.Run("Player without a game", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&entity.Player{ID: "p1"}, nil).Once()

		_, err := manager.MakeTurn(ctx, "p1", 7, 7)

		require.ErrorIs(t, err, repository.ErrGameNotFound)
	})
}

func TestGameManager_UndoTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Takes back the human move and the bot reply", func(t *testing.T) {
		manager, deps := newTestManager(t)

		player := &entity.Player{ID: "p1"}
		game := newBotGame(t, player)
		require.NoError(t, game.MakeTurn(gomoku.Black, 7, 7))
		require.NoError(t, game.MakeTurn(gomoku.White, 7, 8))
		require.NoError(t, game.MakeTurn(gomoku.Black, 8, 8))
		require.NoError(t, game.MakeTurn(gomoku.White, 6, 6))

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, game).Return(nil).Once()

		updated, err := manager.UndoTurn(ctx, "p1")

		require.NoError(t, err)
		assert.Len(t, updated.Moves, 2)
		assert.Equal(t, gomoku.Black, updated.Turn)
		assert.Equal(t, gomoku.CellEmpty, updated.Board()[8][8])
	})

	t.Run("Only an immediate takeback against a human", func(t *testing.T) {
		manager, deps := newTestManager(t)

		black, white := &entity.Player{ID: "p1"}, &entity.Player{ID: "p2"}
		game := newPrivateGame(t, black, white)
		require.NoError(t, game.MakeTurn(gomoku.Black, 7, 7))
		require.NoError(t, game.MakeTurn(gomoku.White, 7, 8))

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(black, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()

		_, err := manager.UndoTurn(ctx, "p1")

		require.ErrorIs(t, err, apperror.ErrNothingToUndo)
		assert.Len(t, game.Moves, 2)
	})

	t.Run("Own last move against a human", func(t *testing.T) {
		manager, deps := newTestManager(t)

		black, white := &entity.Player{ID: "p1"}, &entity.Player{ID: "p2"}
		game := newPrivateGame(t, black, white)
		require.NoError(t, game.MakeTurn(gomoku.Black, 7, 7))

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(black, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, game).Return(nil).Once()

		updated, err := manager.UndoTurn(ctx, "p1")

		require.NoError(t, err)
		assert.Empty(t, updated.Moves)
		assert.Equal(t, gomoku.Black, updated.Turn)
	})

	t.Run("Finished game", func(t *testing.T) {
		manager, deps := newTestManager(t)

		player := &entity.Player{ID: "p1"}
		game := newBotGame(t, player)
		game.Status = entity.StatusFinished

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()

		_, err := manager.UndoTurn(ctx, "p1")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameManager_ScoreGrid(t *testing.T) {
	manager, deps := newTestManager(t)

	// Given: a fresh bot game
	player := &entity.Player{ID: "p1"}
	game := newBotGame(t, player)
	deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil).Once()
	deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()

	// When: the player asks for hints
	grid, _, err := manager.ScoreGrid(context.Background(), "p1")

	// Then: every cell is scored, interior cells see four open lines
	require.NoError(t, err)
	require.Len(t, grid, gomoku.DefaultBoardSize)
	assert.Len(t, grid[0], gomoku.DefaultBoardSize)
	assert.InDelta(t, 40*gomoku.DefaultBias+40, grid[7][7], 1e-9)
	assert.InDelta(t, 0.0, grid[0][0], 1e-9)
}

func TestGameManager_LeaveGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Leaving an ongoing game forfeits it", func(t *testing.T) {
		manager, deps := newTestManager(t)

		black, white := &entity.Player{ID: "p1"}, &entity.Player{ID: "p2"}
		game := newPrivateGame(t, black, white)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(black, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, game.ID).Return(game, nil).Once()
		deps.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, game).Return(nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).Return(nil).Twice()

		left, err := manager.LeaveGame(ctx, "p1")

		require.NoError(t, err)
		assert.True(t, left.IsFinished())
		assert.Equal(t, entity.WinnerWhite, left.Winner)
	})

	t.Run("Leaving a waiting game drops it", func(t *testing.T) {
		manager, deps := newTestManager(t)

		owner := &entity.Player{ID: "p1", GameID: "g3", Color: gomoku.Black}
		game := entity.NewGame("g3", entity.PrivateType, 0)
		game.Players = []*entity.Player{owner}

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(owner, nil).Once()
		deps.gameRepo.EXPECT().GetByID(mock.Anything, "g3").Return(game, nil).Once()
		deps.gameRepo.EXPECT().DeleteByID(mock.Anything, "g3").Return(nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).Return(nil).Once()

		_, err := manager.LeaveGame(ctx, "p1")

		require.NoError(t, err)
	})
}
