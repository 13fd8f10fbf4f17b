package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/transport/dto"
)

const (
	actionConnect    = "connect"
	actionGameNew    = "game:new"
	actionGameJoin   = "game:join"
	actionGameTurn   = "game:turn"
	actionGameUndo   = "game:undo"
	actionGameScores = "game:scores"
	actionGameLeave  = "game:leave"
	actionError      = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is what clients send.
type Payload struct {
	Player *PlayerRequest `json:"player,omitempty"`
	Game   *GameRequest   `json:"game,omitempty"`
	Move   *MoveRequest   `json:"move,omitempty"`
}

type PlayerRequest struct {
	ID string `json:"id"`
}

type GameRequest struct {
	ID    string        `json:"id,omitempty"`
	Type  string        `json:"type,omitempty"`
	Color gomoku.Player `json:"color,omitempty"`
}

type MoveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ResponsePayload is what the server sends back.
type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *dto.GameView  `json:"game,omitempty"`
	Scores [][]float64    `json:"scores,omitempty"`
	Error  string         `json:"error,omitempty"`
}
