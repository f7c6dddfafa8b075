package models

import (
	"github.com/shopspring/decimal"
)

// Currency represents a currency the store can display prices in.
type Currency struct {
	ID uint64 `gorm:"primaryKey"`
	// Name is the display name of the currency.
	Name string `gorm:"size:100;not null" validate:"required"`
	// CurrencyCode is the ISO 4217 three letter code.
	CurrencyCode string `gorm:"size:5;not null" validate:"required,len=3"`
	// Rate is the exchange rate against the primary store currency.
	Rate decimal.Decimal `gorm:"type:decimal(18,8);not null" validate:"required"`
	// DisplayLocale is the culture used to format amounts, e.g. "en-US".
	DisplayLocale string `gorm:"size:50"`
	// CustomFormatting overrides the locale based format when set.
	CustomFormatting string `gorm:"size:50"`
	Published        bool
	DisplayOrder     int
}
