package domain

import "time"

type ShareLink struct {
	ID          uint       `json:"id"`
	Token       string     `json:"token"`
	OwnerUserID uint       `json:"-"`
	Name        string     `json:"name,omitempty"`
	GroupTag    string     `json:"group_tag,omitempty"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Expired reports whether the link's advisory expiry has passed. A link past
// its expiry is unusable even while IsActive remains true.
func (l *ShareLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}

// ShareScope is the read context a validated share token yields. A non-empty
// GroupTag restricts the scope to game nights carrying exactly that tag.
type ShareScope struct {
	OwnerUserID uint
	GroupTag    string
}
