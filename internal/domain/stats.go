package domain

import "time"

// StatsFilter narrows the aggregation scope. All fields are optional and
// compose freely; exclusivity rules between GameID and PlayerID live at the
// API boundary, not here.
type StatsFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	GameID    uint
	PlayerID  uint
	GroupTag  string
}

type StatsReport struct {
	Overview         StatsOverview      `json:"overview"`
	Leaderboard      []LeaderboardEntry `json:"leaderboard"`
	RecentGames      []RecentGame       `json:"recentGames"`
	GameDistribution []GameCount        `json:"gameDistribution"`
}

type StatsOverview struct {
	TotalPlayers     int `json:"totalPlayers"`
	TotalGameNights  int `json:"totalGameNights"`
	TotalGamesPlayed int `json:"totalGamesPlayed"`
	TotalWins        int `json:"totalWins"`
}

type LeaderboardEntry struct {
	PlayerID   uint   `json:"playerId"`
	Name       string `json:"name"`
	TotalGames int    `json:"totalGames"`
	Wins       int    `json:"wins"`
	WinRate    int    `json:"winRate"`
}

type RecentGame struct {
	SessionID     uint      `json:"sessionId"`
	GameName      string    `json:"gameName"`
	GameNightName string    `json:"gameNightName"`
	PlayedAt      time.Time `json:"playedAt"`
	Winners       []string  `json:"winners"`
	PlayerCount   int       `json:"playerCount"`
}

type GameCount struct {
	GameName string `json:"gameName"`
	Count    int    `json:"count"`
}
