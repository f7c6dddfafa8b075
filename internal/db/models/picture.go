package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Picture represents stored media metadata. The binary content lives outside
// this subsystem; the seeder only records the reference.
type Picture struct {
	ID uint64 `gorm:"primaryKey"`
	// Guid is a stable external identifier, assigned before insert.
	Guid string `gorm:"size:36;uniqueIndex"`
	// SeoFilename is the human readable file name combinations are matched against.
	SeoFilename string `gorm:"size:300;not null" validate:"required"`
	MimeType    string `gorm:"size:40"`
	IsNew       bool
}

// BeforeCreate assigns the external identifier when missing.
func (p *Picture) BeforeCreate(_ *gorm.DB) error {
	if p.Guid == "" {
		p.Guid = uuid.New().String()
	}

	return nil
}
