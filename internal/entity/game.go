package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie Mark = "-"
)

// Game is a record of a sequence of moves played from a starting board.
type Game struct {
	Start   Board    `json:"start"`
	Board   Board    `json:"board"`
	Moves   []Action `json:"moves"`
	Winner  Mark     `json:"winner"`
	Status  string   `json:"status"`
	Utility int      `json:"utility"`
}

func NewGame(start Board) *Game {
	return &Game{
		Start:  start,
		Board:  start,
		Moves:  []Action{},
		Status: StatusOngoing,
	}
}

// Finish stores the result of a terminal board. An empty winner is a tie.
func (that *Game) Finish(winner Mark, utility int) {
	if winner == Empty {
		winner = PlayerTie
	}

	that.Winner = winner
	that.Utility = utility
	that.Status = StatusFinished
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.Winner == PlayerTie
}
