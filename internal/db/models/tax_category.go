package models

// TaxCategory represents a tax class products are assigned to.
type TaxCategory struct {
	ID           uint64 `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null" validate:"required"`
	DisplayOrder int
}
