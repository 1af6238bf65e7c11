package model

import "time"

type RefreshToken struct {
	ID        int64     `db:"id"`
	Token     string    `db:"token"`
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Session : результат login и refresh
type Session struct {
	User             *User
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}
