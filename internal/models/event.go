package models

import "github.com/google/uuid"

// ScoreEvent is published after a score has been stored
type ScoreEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Score     int64     `json:"score"`
	Timestamp int64     `json:"timestamp"` // unix seconds
}
