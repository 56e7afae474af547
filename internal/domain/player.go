package domain

import "time"

type Player struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	OwnerUserID uint      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
