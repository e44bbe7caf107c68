package models

import "time"

// NewsGroup represents a topical discussion community.
//
// PromptOfTheWeek holds the current AI-generated discussion question; it is
// empty until the first successful prompt refresh.
type NewsGroup struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Category        string    `gorm:"size:50" json:"category"`
	PromptOfTheWeek string    `gorm:"type:text" json:"prompt"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Posts           []Post    `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
	Members         []User    `gorm:"many2many:group_memberships;joinForeignKey:GroupID;joinReferences:UserID" json:"members,omitempty"`
}

// TableName specifies the table name for GORM.
func (NewsGroup) TableName() string {
	return "news_groups"
}

// GroupDetail is the API projection of a news group. Members and Posts are
// attached only when explicitly requested.
type GroupDetail struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Prompt      string        `json:"prompt"`
	MemberCount int64         `json:"member_count"`
	PostCount   int64         `json:"post_count"`
	Members     []UserSummary `json:"members,omitempty"`
	Posts       []PostDict    `json:"posts,omitempty"`
}
