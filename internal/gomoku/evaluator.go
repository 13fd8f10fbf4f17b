package gomoku

const (
	scoreFive       = 100000
	scoreOpenFour   = 10000
	scoreClosedFour = 1000
	scoreOpenThree  = 1000
	scoreClosedThr  = 100
	scoreOpenTwo    = 100
	scoreClosedTwo  = 10
	scoreOpenOne    = 10
)

// DefaultBias weights the AI's own attacking potential above blocking the opponent.
const DefaultBias = 1.2

// Evaluator ranks candidate cells for the side it plays.
type Evaluator struct {
	Own  Player
	Bias float64
}

// DefaultEvaluator - the AI plays White.
var DefaultEvaluator = Evaluator{Own: White, Bias: DefaultBias}

func NewEvaluator(own Player, bias float64) Evaluator {
	if !own.IsValid() {
		own = White
	}
	if bias <= 0 {
		bias = DefaultBias
	}
	return Evaluator{Own: own, Bias: bias}
}

// Evaluate - combined desirability of (x, y): own score times Bias plus the opponent's score.
// Occupied and out-of-range cells score 0.
func (that Evaluator) Evaluate(board Board, x, y int) float64 {
	if !that.Own.IsValid() || board.At(x, y) != CellEmpty {
		return 0
	}

	own := ScoreMoveForPlayer(board, x, y, that.Own)
	opponent := ScoreMoveForPlayer(board, x, y, that.Own.Opponent())

	return float64(own)*that.Bias + float64(opponent)
}

// ScoreGrid - Evaluate for every cell, indexed [x][y].
func (that Evaluator) ScoreGrid(board Board) [][]float64 {
	size := board.Size()
	grid := make([][]float64, size)

	for x := 0; x < size; x++ {
		grid[x] = make([]float64, size)
		for y := 0; y < size; y++ {
			grid[x][y] = that.Evaluate(board, x, y)
		}
	}

	return grid
}

// EvaluateCell - white score * 1.2 + black score.
func EvaluateCell(board Board, x, y int) float64 {
	return DefaultEvaluator.Evaluate(board, x, y)
}

// ScoreMoveForPlayer - sums LineScore over the four directions as if player had a stone at (x, y).
// The board is only read; the candidate stone is hypothetical.
func ScoreMoveForPlayer(board Board, x, y int, player Player) int {
	if !player.IsValid() || board.At(x, y) != CellEmpty {
		return 0
	}

	score := 0
	for _, dir := range directions {
		count, openEnds := CountRunAndOpenEnds(board, x, y, dir[0], dir[1], player)
		score += LineScore(count, openEnds)
	}

	return score
}

// CountRunAndOpenEnds - length of the player's run through (x, y) along (dx, dy), origin included,
// and how many of its two ends stop on an empty cell.
func CountRunAndOpenEnds(board Board, x, y, dx, dy int, player Player) (int, int) {
	count := 1
	openEnds := 0

	for _, sign := range [2]int{1, -1} {
		run, open := scanSide(board, x, y, dx*sign, dy*sign, player.Cell())
		count += run
		if open {
			openEnds++
		}
	}

	return count, openEnds
}

func scanSide(board Board, x, y, dx, dy int, target Cell) (int, bool) {
	run := 0
	for {
		x, y = x+dx, y+dy

		switch board.At(x, y) {
		case target:
			run++
		case CellEmpty:
			return run, true
		default:
			return run, false
		}
	}
}

// LineScore - point value of a run with the given number of open ends.
func LineScore(count, openEnds int) int {
	switch {
	case count >= 5:
		return scoreFive
	case count == 4 && openEnds == 2:
		return scoreOpenFour
	case count == 4 && openEnds == 1:
		return scoreClosedFour
	case count == 3 && openEnds == 2:
		return scoreOpenThree
	case count == 3 && openEnds == 1:
		return scoreClosedThr
	case count == 2 && openEnds == 2:
		return scoreOpenTwo
	case count == 2 && openEnds == 1:
		return scoreClosedTwo
	case count == 1 && openEnds == 2:
		return scoreOpenOne
	default:
		return 0
	}
}
