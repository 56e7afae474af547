package domain

import "time"

type Game struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	OwnerUserID uint      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
