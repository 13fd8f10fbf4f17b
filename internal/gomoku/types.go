package gomoku

import "fmt"

const (
	DefaultBoardSize = 15
	WinLength        = 5
)

// Cell is the content of a single board intersection.
type Cell int8

const (
	CellOutOfRange Cell = -1
	CellEmpty      Cell = 0
	CellBlack      Cell = 1
	CellWhite      Cell = 2
)

func (that Cell) String() string {
	switch that {
	case CellEmpty:
		return "empty"
	case CellBlack:
		return "black"
	case CellWhite:
		return "white"
	default:
		return "out_of_range"
	}
}

// Player is the side to move. Black always moves first.
type Player int8

const (
	NoPlayer Player = 0
	Black    Player = 1
	White    Player = 2
)

func (that Player) Opponent() Player {
	if that == Black {
		return White
	}
	return Black
}

func (that Player) Cell() Cell {
	return Cell(that)
}

func (that Player) IsValid() bool {
	return that == Black || that == White
}

func (that Player) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParsePlayer - converts "black"/"white" into a Player.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	case "", "none":
		return NoPlayer, nil
	default:
		return NoPlayer, fmt.Errorf("unknown player color %q", s)
	}
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player

	return nil
}

// Status is derived from the board and the last move, it is never stored by GameState.
type Status int8

const (
	StatusPlaying Status = iota + 1
	StatusBlackWin
	StatusWhiteWin
	StatusDraw
)

func (that Status) IsTerminal() bool {
	return that == StatusBlackWin || that == StatusWhiteWin || that == StatusDraw
}

func (that Status) String() string {
	switch that {
	case StatusPlaying:
		return "playing"
	case StatusBlackWin:
		return "black_win"
	case StatusWhiteWin:
		return "white_win"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}

func winStatus(player Player) Status {
	if player == Black {
		return StatusBlackWin
	}
	return StatusWhiteWin
}

// Move is a stone placement. A zero Player means "whoever is to move".
type Move struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Player Player `json:"player,omitempty"`
}

func NewMove(x, y int) Move {
	return Move{X: x, Y: y}
}

// CellInfo is one element of the row-major board traversal.
type CellInfo struct {
	X     int
	Y     int
	Value Cell
}

// directions - horizontal, vertical, diagonal, anti-diagonal.
var directions = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}
