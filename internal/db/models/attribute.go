package models

import (
	"github.com/shopspring/decimal"
)

// AttributeControlType selects the UI control a variant attribute is rendered with.
type AttributeControlType int

const (
	// ControlTypeDropdownList renders the attribute as a dropdown list.
	ControlTypeDropdownList AttributeControlType = iota + 1
	// ControlTypeRadioList renders the attribute as a radio button list.
	ControlTypeRadioList
	// ControlTypeBoxes renders the attribute as selectable boxes (color or text squares).
	ControlTypeBoxes
)

// ProductAttribute represents a reusable attribute definition, e.g. "Color".
// Alias is the stable external key; lookups by alias expect exactly one match.
type ProductAttribute struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null" validate:"required"`
	Alias       string `gorm:"size:100;uniqueIndex;not null" validate:"required"`
	Description string `gorm:"type:text"`
}

// ProductVariantAttribute links a ProductAttribute to a Product and carries
// the UI metadata of that assignment. A product has at most one assignment
// per attribute.
type ProductVariantAttribute struct {
	ID                 uint64 `gorm:"primaryKey"`
	ProductID          uint64 `gorm:"uniqueIndex:idx_product_attribute;not null"`
	ProductAttributeID uint64 `gorm:"uniqueIndex:idx_product_attribute;not null"`
	// IsRequired forces the customer to pick a value before adding to cart.
	IsRequired           bool
	AttributeControlType AttributeControlType
	DisplayOrder         int

	ProductAttribute ProductAttribute               `gorm:"foreignKey:ProductAttributeID"`
	Values           []ProductVariantAttributeValue `gorm:"foreignKey:ProductVariantAttributeID"`
}

// ProductVariantAttributeValue is one selectable option of an assignment,
// e.g. "Red". Alias is unique within the parent assignment.
type ProductVariantAttributeValue struct {
	ID                        uint64 `gorm:"primaryKey"`
	ProductVariantAttributeID uint64 `gorm:"uniqueIndex:idx_assignment_alias;not null"`
	Alias                     string `gorm:"size:100;uniqueIndex:idx_assignment_alias;not null" validate:"required"`
	Name                      string `gorm:"size:250;not null" validate:"required"`
	// PriceAdjustment is added to the product price when this value is selected.
	PriceAdjustment decimal.Decimal `gorm:"type:decimal(18,4)"`
	Quantity        int
	IsPreSelected   bool
	// Color holds an html color code for boxes controls, empty otherwise.
	Color string `gorm:"size:100"`
	// PictureID references a picture shown for this value, zero when unset.
	PictureID    uint64
	DisplayOrder int
}

// ProductVariantAttributeCombination is one sellable tuple of values across a
// product's assignments, with its own SKU, stock and optional price override.
type ProductVariantAttributeCombination struct {
	ID        uint64 `gorm:"primaryKey"`
	ProductID uint64 `gorm:"index;not null"`
	Sku       string `gorm:"size:100"`
	// AttributesXML is the encoded selection identifying this combination.
	// It round-trips to exactly the (assignment, value) pairs that produced it
	// and is distinct per combination of one product.
	AttributesXML         string `gorm:"type:text;not null"`
	StockQuantity         int
	IsActive              bool
	AllowOutOfStockOrders bool
	// Price overrides the product price when non nil.
	Price *decimal.Decimal `gorm:"type:decimal(18,4)"`
	// AssignedPictureIDs are the pictures attached to this combination, in order.
	AssignedPictureIDs []uint64 `gorm:"serializer:json"`
}
