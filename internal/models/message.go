package models

import "time"

type AuthorVersion string

const (
	AuthorPast    AuthorVersion = "past"
	AuthorPresent AuthorVersion = "present"
)

// FutureMessage is a note written to a future self. Immutable after creation;
// the reveal check only reads it.
type FutureMessage struct {
	ID            string        `json:"id"`
	TargetDate    string        `json:"target_date"` // YYYY-MM-DD format
	Content       string        `json:"content"`
	AuthorVersion AuthorVersion `json:"author_version"`
	CreatedAt     time.Time     `json:"created_at"`
}
