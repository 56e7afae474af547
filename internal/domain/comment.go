package domain

import "time"

// Comment is a note on a game night, optionally scoped to one session.
// AuthorName is only set for comments left by share-link visitors; owner
// comments carry no attribution.
type Comment struct {
	ID            uint      `json:"id"`
	Content       string    `json:"content"`
	AuthorName    string    `json:"author_name,omitempty"`
	GameNightID   uint      `json:"game_night_id"`
	GameSessionID *uint     `json:"game_session_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
