package entity

import "github.com/rocketscienceinc/gomoku-backend/internal/gomoku"

const botPlayerPrefix = "bot:"

type Player struct {
	ID     string        `json:"id"`
	Color  gomoku.Player `json:"color,omitempty"`
	GameID string        `json:"game_id,omitempty"`
	Bot    bool          `json:"bot,omitempty"`
}

func NewBotPlayer(gameID string, color gomoku.Player) *Player {
	return &Player{
		ID:     botPlayerPrefix + gameID,
		Color:  color,
		GameID: gameID,
		Bot:    true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}

// LeaveGame - detaches the player from its game.
func (that *Player) LeaveGame() {
	that.GameID = ""
	that.Color = gomoku.NoPlayer
}
