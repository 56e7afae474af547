package domain

import "time"

type GameNight struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Date        time.Time     `json:"date"`
	GroupTag    string        `json:"group_tag,omitempty"`
	OwnerUserID uint          `json:"-"`
	Sessions    []GameSession `json:"sessions,omitempty"`
	Comments    []Comment     `json:"comments,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// GameSession is one play of one game within a game night. The same game
// may be played several times in the same night.
type GameSession struct {
	ID            uint         `json:"id"`
	GameID        uint         `json:"game_id"`
	GameName      string       `json:"game_name"`
	GameNightID   uint         `json:"game_night_id"`
	GameNightName string       `json:"game_night_name,omitempty"`
	Results       []GameResult `json:"results,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

type GameResult struct {
	ID            uint   `json:"id"`
	GameSessionID uint   `json:"game_session_id"`
	PlayerID      uint   `json:"player_id"`
	PlayerName    string `json:"player_name"`
	Position      int    `json:"position"`
	Points        *int   `json:"points,omitempty"`
	IsWinner      bool   `json:"is_winner"`
}
