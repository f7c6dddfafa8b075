package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category represents a catalog category. Categories form a tree via ParentCategoryID.
type Category struct {
	ID               uint64 `gorm:"primaryKey"`
	Name             string `gorm:"size:400;not null" validate:"required"`
	Description      string `gorm:"type:text"`
	ParentCategoryID uint64 `gorm:"index"`
	PictureID        uint64
	PageSize         int
	Published        bool
	DisplayOrder     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Manufacturer represents a brand products belong to.
type Manufacturer struct {
	ID           uint64 `gorm:"primaryKey"`
	Name         string `gorm:"size:400;not null" validate:"required"`
	Description  string `gorm:"type:text"`
	PictureID    uint64
	PageSize     int
	Published    bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product represents a sellable product of the sample catalog.
type Product struct {
	// ID is the unique identifier for the product.
	ID uint64 `gorm:"primaryKey"`
	// Guid is a stable external identifier, assigned before insert.
	Guid string `gorm:"size:36;uniqueIndex"`
	// Name is the display name of the product.
	Name string `gorm:"size:400;not null" validate:"required"`
	// Sku is the base stock keeping unit; combination SKUs are derived from it.
	Sku              string `gorm:"size:100"`
	ShortDescription string `gorm:"type:text"`
	FullDescription  string `gorm:"type:text"`
	// Price is the list price in the primary store currency.
	Price decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	// OldPrice is the strike-through price, zero when unused.
	OldPrice       decimal.Decimal `gorm:"type:decimal(18,4)"`
	StockQuantity  int
	CategoryID     uint64 `gorm:"index"`
	ManufacturerID uint64 `gorm:"index"`
	TaxCategoryID  uint64
	Published      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BeforeCreate assigns the external identifier when missing.
func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.Guid == "" {
		p.Guid = uuid.New().String()
	}

	return nil
}
