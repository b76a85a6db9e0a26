// Package domain holds the wire schemas of the remote Spacebook service plus
// the locally persisted session. Response bodies are decoded into these types
// at the client boundary instead of being trusted shapeless at use sites.
package domain

import "time"

// Session is the authenticated identity persisted across restarts. Both
// fields are set and cleared together; a session with only one of them is a
// bug in the store, not a valid state.
type Session struct {
	UserID string
	Token  string
}

type User struct {
	ID        int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

// SearchResult is the shape the search endpoint uses for users; the field
// names differ from the ones the user endpoint uses.
type SearchResult struct {
	ID         int64  `json:"user_id"`
	GivenName  string `json:"user_givenname"`
	FamilyName string `json:"user_familyname"`
	Email      string `json:"user_email,omitempty"`
}

type Post struct {
	ID        int64     `json:"post_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Author    User      `json:"author"`
	Likes     int       `json:"numLikes"`
}

// FriendRequest is an incoming, not yet accepted request. The sender's fields
// mirror User.
type FriendRequest struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}
