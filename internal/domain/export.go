package domain

import "time"

// ExportDocument is the full-account data dump used for user-initiated
// backups. It is never filtered.
type ExportDocument struct {
	ExportedAt time.Time      `json:"exported_at"`
	User       ExportUser     `json:"user"`
	Players    []ExportPlayer `json:"players"`
	Games      []Game         `json:"games"`
	GameNights []GameNight    `json:"game_nights"`
	Summary    ExportSummary  `json:"summary"`
}

type ExportUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ExportPlayer struct {
	Player
	TotalGames int `json:"total_games"`
	Wins       int `json:"wins"`
}

type ExportSummary struct {
	TotalPlayers    int `json:"total_players"`
	TotalGames      int `json:"total_games"`
	TotalGameNights int `json:"total_game_nights"`
	TotalSessions   int `json:"total_sessions"`
}
