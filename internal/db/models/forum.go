package models

import (
	"time"
)

// ForumGroup is a top level grouping of forums.
type ForumGroup struct {
	ID           uint64 `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null" validate:"required"`
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Forums []Forum `gorm:"foreignKey:ForumGroupID"`
}

// Forum is one discussion board inside a forum group.
type Forum struct {
	ID           uint64 `gorm:"primaryKey"`
	ForumGroupID uint64 `gorm:"index;not null"`
	Name         string `gorm:"size:200;not null" validate:"required"`
	Description  string `gorm:"type:text"`
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
