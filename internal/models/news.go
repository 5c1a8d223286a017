package models

import (
	"time"
)

// News represents a news article. UserID is set once at creation and is the
// sole authority for update/delete.
type News struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Title     string      `gorm:"not null" json:"title"`
	Content   string      `gorm:"type:text;not null" json:"content"`
	Image     string      `gorm:"not null" json:"image"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	User      UserSummary `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewsPageMetadata describes one page of a news listing.
type NewsPageMetadata struct {
	TotalNews    int64 `json:"totalNews"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	CurrentLimit int   `json:"currentLimit"`
}
