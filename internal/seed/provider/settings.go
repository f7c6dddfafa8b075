package provider

import (
	"github.com/shopspring/decimal"
)

// StoreSettings are the store identity settings, flattened to one row per field.
type StoreSettings struct {
	Name                string
	URL                 string
	SslEnabled          bool
	DisplayMiniProfiler bool
}

// TaxSettings control how prices and tax are displayed and calculated.
type TaxSettings struct {
	PricesIncludeTax                     bool
	AllowCustomersToSelectTaxDisplayType bool
	DisplayTaxSuffix                     bool
	ShippingIsTaxable                    bool
	ShippingPriceIncludesTax             bool
	DefaultTaxAddressID                  uint64
}

// CatalogSettings control catalog browsing defaults.
type CatalogSettings struct {
	ShowProductSku                   bool
	DefaultPageSize                  int
	ProductSearchAutoCompleteEnabled bool
	RecentlyViewedProductsCount      int
	MinOrderSubtotal                 decimal.Decimal
}

// CustomerSettings control account behavior.
type CustomerSettings struct {
	UsernamesEnabled            bool
	AllowUsersToChangeUsernames bool
	PasswordMinLength           int
	NewsletterEnabled           bool
}

// MediaSettings nests per-size thumbnail dimensions and changes shape often,
// so the whole object is persisted as one opaque blob.
type MediaSettings struct {
	AvatarPictureSize int
	ProductThumbSize  int
	ProductDetailSize int
	CartThumbSize     int
	ImageQuality      int
	AllowedMimeTypes  []string
	SizesByCategory   map[string]int
}

// OpaqueSettings marks MediaSettings for blob persistence.
func (MediaSettings) OpaqueSettings() {}

// Settings returns the settings objects persisted at installation.
func (d *Default) Settings() []any {
	return []any{
		StoreSettings{
			Name:       d.install.StoreName,
			URL:        d.install.StoreURL,
			SslEnabled: false,
		},
		TaxSettings{
			PricesIncludeTax:  false,
			DisplayTaxSuffix:  false,
			ShippingIsTaxable: true,
		},
		CatalogSettings{
			ShowProductSku:                   true,
			DefaultPageSize:                  12,
			ProductSearchAutoCompleteEnabled: true,
			RecentlyViewedProductsCount:      4,
			MinOrderSubtotal:                 decimal.Zero,
		},
		CustomerSettings{
			UsernamesEnabled:  true,
			PasswordMinLength: 6,
			NewsletterEnabled: true,
		},
		MediaSettings{
			AvatarPictureSize: 85,
			ProductThumbSize:  125,
			ProductDetailSize: 300,
			CartThumbSize:     80,
			ImageQuality:      100,
			AllowedMimeTypes:  []string{"image/jpeg", "image/png", "image/gif"},
			SizesByCategory:   map[string]int{"default": 125},
		},
	}
}
