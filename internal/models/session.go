package models

import "time"

// SessionTTL はセッションの有効期間（固定、アクセスしても延長されない）
const SessionTTL = 1 * time.Hour

type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
