package model

import "time"

// Session is the server-side state behind a session cookie.
type Session struct {
	ID        string    `json:"-"`
	UserID    string    `json:"userId"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}
