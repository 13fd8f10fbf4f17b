package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/transport/dto"
)

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

// playerOf - the player bound to the session. The payload player is used only
// while the session is unbound; only connect can switch players afterwards.
func (that *Server) playerOf(payload Payload, sess *session) string {
	if sess.playerID == "" && payload.Player != nil && payload.Player.ID != "" {
		that.register(payload.Player.ID, sess)
	}

	return sess.playerID
}

func (that *Server) handleConnect(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleConnect")

	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess.conn, msg.Action, "malformed payload")
	}

	playerID := sess.sessionID
	if payload.Player != nil && payload.Player.ID != "" {
		playerID = payload.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(sess.conn, msg.Action, "failed to create a new player")
	}

	that.register(player.ID, sess)

	response := ResponsePayload{Player: player}

	if player.GameID != "" {
		game, err := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
		if err != nil {
			log.Warn("failed to get current game", "gameID", player.GameID, "error", err)
		} else {
			response.Game = dto.NewGameView(game)
		}
	}

	log.Info("player connected", "playerID", player.ID)

	return that.sendMessage(sess.conn, msg.Action, response)
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleNewGame")

	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess.conn, msg.Action, "malformed payload")
	}

	playerID := that.playerOf(payload, sess)
	if playerID == "" {
		return that.sendErrorResponse(sess.conn, msg.Action, "Player is required")
	}

	if payload.Game == nil {
		return that.sendErrorResponse(sess.conn, msg.Action, "Game is required")
	}

	game, err := that.gameUseCase.GetOrCreateGame(ctx, playerID, payload.Game.Type, payload.Game.Color)
	if err != nil {
		log.Error("failed to create game", "playerID", playerID, "error", err)
		return that.sendErrorResponse(sess.conn, msg.Action, err.Error())
	}

	that.broadcast(msg.Action, game)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleJoinGame")

	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess.conn, msg.Action, "malformed payload")
	}

	playerID := that.playerOf(payload, sess)
	if playerID == "" {
		return that.sendErrorResponse(sess.conn, msg.Action, "Player is required")
	}

	if payload.Game == nil || payload.Game.ID == "" {
		return that.sendErrorResponse(sess.conn, msg.Action, "Game is required")
	}

	game, err := that.gameUseCase.JoinGame(ctx, payload.Game.ID, playerID)
	if err != nil {
		log.Error("failed to join game", "gameID", payload.Game.ID, "error", err)
		return that.sendErrorResponse(sess.conn, msg.Action, err.Error())
	}

	that.broadcast(msg.Action, game)

	log.Info("player joined game", "playerID", playerID, "gameID", game.ID)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleGameTurn")

	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess.conn, msg.Action, "malformed payload")
	}

	playerID := that.playerOf(payload, sess)
	if playerID == "" {
		return that.sendErrorResponse(sess.conn, msg.Action, "Player is required")
	}

	if payload.Move == nil {
		return that.sendErrorResponse(sess.conn, msg.Action, "Move is required")
	}

	game, err := that.gameUseCase.MakeTurn(ctx, playerID, payload.Move.X, payload.Move.Y)
	if err != nil {
		log.Debug("turn rejected", "playerID", playerID, "error", err)
		return that.sendErrorResponse(sess.conn, msg.Action, err.Error())
	}

	that.broadcast(msg.Action, game)

	if game.IsFinished() {
		log.Info("game finished", "gameID", game.ID, "winner", game.Winner)
	}

	return nil
}

func (that *Server) handleGameUndo(ctx context.Context, msg *Message, sess *session) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess.conn, msg.Action, "malformed payload")
	}

	playerID := that.playerOf(payload, sess)
	if playerID == "" {
		return that.sendErrorResponse(sess.conn, msg.Action, "Player is required")
	}

	game, err := that.gameUseCase.UndoTurn(ctx, playerID)
	if err != nil {
		return that.sendErrorResponse(sess.conn, msg.Action, err.Error())
	}

	that.broadcast(msg.Action, game)

	return nil
}

// handleGameScores - evaluation overlay, sent to the asking player only.
func (that *Server) handleGameScores(ctx context.Context, msg *Message, sess *session) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess.conn, msg.Action, "malformed payload")
	}

	playerID := that.playerOf(payload, sess)
	if playerID == "" {
		return that.sendErrorResponse(sess.conn, msg.Action, "Player is required")
	}

	scores, game, err := that.gameUseCase.ScoreGrid(ctx, playerID)
	if err != nil {
		return that.sendErrorResponse(sess.conn, msg.Action, err.Error())
	}

	return that.sendMessage(sess.conn, msg.Action, ResponsePayload{
		Game:   dto.NewGameView(game),
		Scores: scores,
	})
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleGameLeave")

	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess.conn, msg.Action, "malformed payload")
	}

	playerID := that.playerOf(payload, sess)
	if playerID == "" {
		return that.sendErrorResponse(sess.conn, msg.Action, "Player is required")
	}

	game, err := that.gameUseCase.LeaveGame(ctx, playerID)
	if err != nil {
		log.Error("failed to leave game", "playerID", playerID, "error", err)
		return that.sendErrorResponse(sess.conn, msg.Action, err.Error())
	}

	that.broadcast(msg.Action, game)

	log.Info("player left", "playerID", playerID, "gameID", game.ID)

	return nil
}

// broadcast - sends the game to every connected human seated in it.
func (that *Server) broadcast(action string, game *entity.Game) {
	log := that.logger.With("method", "broadcast", "gameID", game.ID)

	view := dto.NewGameView(game)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		conn, ok := that.connectionOf(player.ID)
		if !ok {
			log.Warn("connection not found for player", "playerID", player.ID)
			continue
		}

		if err := that.sendMessage(conn, action, ResponsePayload{Player: player, Game: view}); err != nil {
			log.Error("failed to send game update", "playerID", player.ID, "error", err)
		}
	}
}
