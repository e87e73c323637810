package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrDuplicateIdentity  = errors.New("email or username already taken")
)

// Post is a single blog entry. Posts are immutable once created.
type Post struct {
	ID string `json:"id"`
	// UserID is the back-reference to the authoring User.
	UserID   string    `json:"user"`
	Date     time.Time `json:"date"`
	Title    string    `json:"title"`
	Content1 string    `json:"content1"`
	Content2 string    `json:"content2"`
	// Pic1/Pic2 hold stored upload filenames, empty when no image was attached.
	Pic1 string `json:"pic1,omitempty"`
	Pic2 string `json:"pic2,omitempty"`
}
