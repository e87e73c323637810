package domain

import "time"

// User models a registered author.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	// PostIDs holds the ids of every post this user authored, in creation order.
	PostIDs   []string  `json:"posts"`
	CreatedAt time.Time `json:"created_at"`
}
