package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a single authored message inside a news group.
//
// UpdatedAt doubles as the post's timestamp: GORM sets it at creation and
// every edit bumps it, which is also the ordering key for group feeds.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	GroupID   uint           `gorm:"not null;index" json:"group_id"`
	Group     *NewsGroup     `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PostDict is the serialization-ready projection of a post. Author is the
// username resolved through the owning relationship, not a stored duplicate.
type PostDict struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
}

// Dict converts the post to its projection. The User association must be
// preloaded for the author name to resolve.
func (p *Post) Dict() PostDict {
	return PostDict{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.User.Username,
		Timestamp: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
