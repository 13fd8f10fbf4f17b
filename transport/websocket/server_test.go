package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	mockedWebsocket "github.com/rocketscienceinc/gomoku-backend/mocks/websocket"
)

type testClient struct {
	t  *testing.T
	ws *websocket.Conn
}

func startTestServer(t *testing.T, header http.Header) (*mockedWebsocket.MockgameUseCase, *testClient) {
	t.Helper()

	useCase := mockedWebsocket.NewMockgameUseCase(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := New(logger, useCase)

	ctx, cancel := context.WithCancel(context.Background())
	httpServer := httptest.NewServer(server.Handler(ctx))
	t.Cleanup(func() {
		cancel()
		httpServer.Close()
	})

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"

	ws, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = ws.Close()
	})
	_ = resp.Body.Close()

	return useCase, &testClient{t: t, ws: ws}
}

func (that *testClient) send(action string, payload any) {
	that.t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(that.t, err)

	require.NoError(that.t, that.ws.WriteJSON(Message{Action: action, Payload: body}))
}

func (that *testClient) receive() (string, ResponsePayload) {
	that.t.Helper()

	require.NoError(that.t, that.ws.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(that.t, that.ws.ReadJSON(&msg))

	var payload ResponsePayload
	require.NoError(that.t, json.Unmarshal(msg.Payload, &payload))

	return msg.Action, payload
}

func (that *testClient) connect(useCase *mockedWebsocket.MockgameUseCase, player *entity.Player) {
	that.t.Helper()

	useCase.EXPECT().GetOrCreatePlayer(mock.Anything, player.ID).Return(player, nil).Once()

	that.send(actionConnect, Payload{Player: &PlayerRequest{ID: player.ID}})

	action, payload := that.receive()
	require.Equal(that.t, actionConnect, action)
	require.Equal(that.t, player.ID, payload.Player.ID)
}

func botGame(player *entity.Player) *entity.Game {
	game := entity.NewGame("g1", entity.WithBotType, gomoku.DefaultBoardSize)
	game.Status = entity.StatusOngoing
	player.GameID, player.Color = game.ID, gomoku.Black
	game.Players = []*entity.Player{player, entity.NewBotPlayer(game.ID, gomoku.White)}

	return game
}

func TestServer_Connect(t *testing.T) {
	t.Run("Connects with the given player ID", func(t *testing.T) {
		useCase, client := startTestServer(t, nil)

		// When: a known player connects
		// Then: the player is echoed back
		client.connect(useCase, &entity.Player{ID: "p1"})
	})

	t.Run("Falls back to the session cookie", func(t *testing.T) {
		// Given: a client with a session cookie and no player ID
		header := http.Header{}
		header.Add("Cookie", sessionCookieName+"=session-1")
		useCase, client := startTestServer(t, header)

		useCase.EXPECT().GetOrCreatePlayer(mock.Anything, "session-1").Return(&entity.Player{ID: "session-1"}, nil).Once()

		// When: connect is sent without a player
		client.send(actionConnect, Payload{})

		// Then: the session id becomes the player id
		action, payload := client.receive()
		assert.Equal(t, actionConnect, action)
		assert.Equal(t, "session-1", payload.Player.ID)
	})

	t.Run("Returns the current game on reconnect", func(t *testing.T) {
		useCase, client := startTestServer(t, nil)

		player := &entity.Player{ID: "p1"}
		game := botGame(player)
		require.NoError(t, game.MakeTurn(gomoku.Black, 7, 7))

		useCase.EXPECT().GetOrCreatePlayer(mock.Anything, "p1").Return(player, nil).Once()
		useCase.EXPECT().GetGameByPlayerID(mock.Anything, "p1").Return(game, nil).Once()

		client.send(actionConnect, Payload{Player: &PlayerRequest{ID: "p1"}})

		_, payload := client.receive()
		require.NotNil(t, payload.Game)
		assert.Equal(t, "g1", payload.Game.ID)
		assert.Equal(t, gomoku.CellBlack, payload.Game.Board[7][7])
		assert.Equal(t, &gomoku.Move{X: 7, Y: 7, Player: gomoku.Black}, payload.Game.LastMove)
	})
}

func TestServer_GameFlow(t *testing.T) {
	t.Run("New game and a turn are broadcast to the player", func(t *testing.T) {
		useCase, client := startTestServer(t, nil)

		player := &entity.Player{ID: "p1"}
		client.connect(useCase, player)

		game := botGame(player)
		useCase.EXPECT().GetOrCreateGame(mock.Anything, "p1", entity.WithBotType, gomoku.Black).Return(game, nil).Once()

		// When: a bot game is requested
		client.send(actionGameNew, Payload{Game: &GameRequest{Type: entity.WithBotType, Color: gomoku.Black}})

		// Then: the empty board comes back
		action, payload := client.receive()
		assert.Equal(t, actionGameNew, action)
		require.NotNil(t, payload.Game)
		assert.True(t, payload.Game.WithBot)
		assert.Len(t, payload.Game.Board, gomoku.DefaultBoardSize)

		useCase.EXPECT().MakeTurn(mock.Anything, "p1", 7, 7).
			RunAndReturn(func(context.Context, string, int, int) (*entity.Game, error) {
				if err := game.MakeTurn(gomoku.Black, 7, 7); err != nil {
					return nil, err
				}
				if err := game.MakeTurn(gomoku.White, 7, 8); err != nil {
					return nil, err
				}
				return game, nil
			}).
			Once()

		// When: the player plays the center
		client.send(actionGameTurn, Payload{Move: &MoveRequest{X: 7, Y: 7}})

		// Then: both stones are on the board and it is Black's turn again
		action, payload = client.receive()
		assert.Equal(t, actionGameTurn, action)
		assert.Equal(t, gomoku.CellBlack, payload.Game.Board[7][7])
		assert.Equal(t, gomoku.CellWhite, payload.Game.Board[7][8])
		assert.Equal(t, gomoku.Black, payload.Game.Turn)
	})

	t.Run("Rejected turn is reported to the sender", func(t *testing.T) {
		useCase, client := startTestServer(t, nil)
		client.connect(useCase, &entity.Player{ID: "p1"})

		useCase.EXPECT().MakeTurn(mock.Anything, "p1", 7, 7).Return(nil, apperror.ErrCellOccupied).Once()

		client.send(actionGameTurn, Payload{Move: &MoveRequest{X: 7, Y: 7}})

		action, payload := client.receive()
		assert.Equal(t, actionGameTurn, action)
		assert.Equal(t, apperror.ErrCellOccupied.Error(), payload.Error)
	})

	t.Run("Scores go to the asking player", func(t *testing.T) {
		useCase, client := startTestServer(t, nil)

		player := &entity.Player{ID: "p1"}
		client.connect(useCase, player)

		game := botGame(player)
		scores := [][]float64{{0, 1}, {2, 3}}
		useCase.EXPECT().ScoreGrid(mock.Anything, "p1").Return(scores, game, nil).Once()

		client.send(actionGameScores, Payload{})

		action, payload := client.receive()
		assert.Equal(t, actionGameScores, action)
		assert.Equal(t, scores, payload.Scores)
	})

	t.Run("Undo failure", func(t *testing.T) {
		useCase, client := startTestServer(t, nil)
		client.connect(useCase, &entity.Player{ID: "p1"})

		useCase.EXPECT().UndoTurn(mock.Anything, "p1").Return(nil, apperror.ErrNothingToUndo).Once()

		client.send(actionGameUndo, Payload{})

		_, payload := client.receive()
		assert.Equal(t, apperror.ErrNothingToUndo.Error(), payload.Error)
	})

	t.Run("Leave is broadcast", func(t *testing.T) {
		useCase, client := startTestServer(t, nil)

		player := &entity.Player{ID: "p1"}
		client.connect(useCase, player)

		game := botGame(player)
		game.Forfeit(gomoku.Black)
		useCase.EXPECT().LeaveGame(mock.Anything, "p1").Return(game, nil).Once()

		client.send(actionGameLeave, Payload{})

		action, payload := client.receive()
		assert.Equal(t, actionGameLeave, action)
		assert.Equal(t, entity.StatusFinished, payload.Game.Status)
		assert.Equal(t, entity.WinnerWhite, payload.Game.Winner)
	})
}

func TestServer_BadInput(t *testing.T) {
	t.Run("Unknown action", func(t *testing.T) {
		_, client := startTestServer(t, nil)

		client.send("game:resign", Payload{})

		action, payload := client.receive()
		assert.Equal(t, "game:resign", action)
		assert.Equal(t, "unknown action", payload.Error)
	})

	t.Run("Player is required before connect", func(t *testing.T) {
		_, client := startTestServer(t, nil)

		client.send(actionGameTurn, Payload{Move: &MoveRequest{X: 1, Y: 1}})

		_, payload := client.receive()
		assert.Equal(t, "Player is required", payload.Error)
	})

	t.Run("Payload player does not override a bound session", func(t *testing.T) {
		useCase, client := startTestServer(t, nil)

		// Given: the session is bound to p1
		client.connect(useCase, &entity.Player{ID: "p1"})

		// When: a turn names another player
		useCase.EXPECT().MakeTurn(mock.Anything, "p1", 3, 3).Return(nil, apperror.ErrNotYourTurn).Once()

		client.send(actionGameTurn, Payload{
			Player: &PlayerRequest{ID: "p2"},
			Move:   &MoveRequest{X: 3, Y: 3},
		})

		// Then: the turn is played as p1
		_, payload := client.receive()
		assert.Equal(t, apperror.ErrNotYourTurn.Error(), payload.Error)
	})

	t.Run("Malformed message keeps the connection open", func(t *testing.T) {
		_, client := startTestServer(t, nil)

		require.NoError(t, client.ws.WriteMessage(websocket.TextMessage, []byte("{not json")))

		action, payload := client.receive()
		assert.Equal(t, actionError, action)
		assert.Equal(t, "malformed message", payload.Error)

		client.send("game:resign", Payload{})

		_, payload = client.receive()
		assert.Equal(t, "unknown action", payload.Error)
	})

	t.Run("Game failure is reported", func(t *testing.T) {
		useCase, client := startTestServer(t, nil)
		client.connect(useCase, &entity.Player{ID: "p1"})

		useCase.EXPECT().JoinGame(mock.Anything, "g9", "p1").Return(nil, errors.New("game is full")).Once()

		client.send(actionGameJoin, Payload{Game: &GameRequest{ID: "g9"}})

		_, payload := client.receive()
		assert.Equal(t, "game is full", payload.Error)
	})
}
