package model

import "time"

// Reel represents an uploaded video's metadata record in the database.
// Reels are immutable once created and carry no author relation.
type Reel struct {
	ID        string
	Title     string
	Filename  string
	CreatedAt time.Time
}

// ReelResponse represents a reel in API responses. The file itself is
// served statically under /uploads/reels/{filename}.
type ReelResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
}
