package models

// GroupMembership maps users to news groups. The composite primary key is
// what enforces the at-most-once membership invariant; the row carries no
// payload of its own.
type GroupMembership struct {
	GroupID uint       `gorm:"primaryKey;autoIncrement:false" json:"group_id"`
	Group   *NewsGroup `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	UserID  uint       `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User    *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
