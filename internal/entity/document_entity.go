package entity

import (
	"time"
)

// Document is the most recently extracted upload of one session.
type Document struct {
	SessionId  string    `json:"session_id"`
	FileName   string    `json:"file_name"`
	Kind       string    `json:"kind"`
	Text       string    `json:"text"`
	IngestedAt time.Time `json:"ingested_at"`
}
