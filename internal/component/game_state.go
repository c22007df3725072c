// internal/component/game_state.go
package component

// Winner хранит исход матча.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerEnemy
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerEnemy:
		return "enemy"
	}
	return "none"
}

// Phase — текущее состояние машины матча.
type Phase int

const (
	Playing Phase = iota
	PlayerWon
	EnemyWon
	Resetting
	Closed
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case PlayerWon:
		return "player-won"
	case EnemyWon:
		return "enemy-won"
	case Resetting:
		return "resetting"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// MatchState — единственная изменяемая запись матча.
type MatchState struct {
	Winner     Winner
	Phase      Phase
	Speed      int // интервал тика, мс; уменьшается с каждым сбитым пришельцем
	Lives      int
	Score      int
	Highest    int
	Direction  int // +1 вправо, -1 влево
	Descending bool
	PlayerX    float64
	Tick       uint64
}
