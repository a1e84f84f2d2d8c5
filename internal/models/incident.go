package models

import (
	"time"
)

// Incident представляет один пользовательский репорт о происшествии.
// UserID == nil означает анонимную подачу: такой репорт всегда непроверенный.
// Репорт авторизованного пользователя всегда verified и никогда не анонимный.
type Incident struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id"`
	Lat         float64   `json:"lat"`
	Long        float64   `json:"long"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Verified    bool      `json:"verified"`
	IsAnonymous bool      `json:"is_anonymous"`
}
