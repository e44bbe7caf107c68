// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultProfilePic is the sentinel picture reference assigned at registration.
const DefaultProfilePic = "default.jpg"

// User represents a registered account in the Newsroom application.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Username   string         `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email      string         `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password   string         `gorm:"size:128;not null" json:"-"`
	ProfilePic string         `gorm:"size:255;not null;default:'default.jpg'" json:"profile_pic"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Posts      []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Groups     []NewsGroup    `gorm:"many2many:group_memberships;joinForeignKey:UserID;joinReferences:GroupID" json:"groups,omitempty"`
}

// UserSummary is the public projection of a user. It never carries the
// email address or password hash.
type UserSummary struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic"`
}

// Summary returns the non-secret projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:         u.ID,
		Username:   u.Username,
		ProfilePic: u.ProfilePic,
	}
}
