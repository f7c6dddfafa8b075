package provider

import (
	"github.com/shopspring/decimal"

	"github.com/GoStorefront/GoStorefront/internal/db/models"
)

// Currencies returns the currencies every store starts with. The first one is
// the primary store currency with rate 1.
func (d *Default) Currencies() []models.Currency {
	return []models.Currency{
		{
			Name:          "US Dollar",
			CurrencyCode:  "USD",
			Rate:          decimal.NewFromInt(1),
			DisplayLocale: "en-US",
			Published:     true,
			DisplayOrder:  1,
		},
		{
			Name:          "Euro",
			CurrencyCode:  "EUR",
			Rate:          decimal.RequireFromString("0.95"),
			DisplayLocale: "de-DE",
			Published:     true,
			DisplayOrder:  2,
		},
		{
			Name:          "British Pound",
			CurrencyCode:  "GBP",
			Rate:          decimal.RequireFromString("0.82"),
			DisplayLocale: "en-GB",
			Published:     false,
			DisplayOrder:  3,
		},
	}
}

// Countries returns the billing and shipping countries with their
// state/province children.
func (d *Default) Countries() []models.Country {
	return []models.Country{
		{
			Name:               "United States",
			TwoLetterIsoCode:   "US",
			ThreeLetterIsoCode: "USA",
			NumericIsoCode:     840,
			AllowsBilling:      true,
			AllowsShipping:     true,
			Published:          true,
			DisplayOrder:       1,
			StateProvinces: []models.StateProvince{
				{Name: "California", Abbreviation: "CA", Published: true, DisplayOrder: 1},
				{Name: "New York", Abbreviation: "NY", Published: true, DisplayOrder: 1},
				{Name: "Texas", Abbreviation: "TX", Published: true, DisplayOrder: 1},
			},
		},
		{
			Name:               "Canada",
			TwoLetterIsoCode:   "CA",
			ThreeLetterIsoCode: "CAN",
			NumericIsoCode:     124,
			AllowsBilling:      true,
			AllowsShipping:     true,
			Published:          true,
			DisplayOrder:       2,
			StateProvinces: []models.StateProvince{
				{Name: "Ontario", Abbreviation: "ON", Published: true, DisplayOrder: 1},
				{Name: "Quebec", Abbreviation: "QC", Published: true, DisplayOrder: 1},
			},
		},
		{
			Name:               "Germany",
			TwoLetterIsoCode:   "DE",
			ThreeLetterIsoCode: "DEU",
			NumericIsoCode:     276,
			AllowsBilling:      true,
			AllowsShipping:     true,
			Published:          true,
			DisplayOrder:       3,
		},
	}
}

// Languages returns the localization languages. The configured default
// culture comes first.
func (d *Default) Languages() []models.Language {
	languages := []models.Language{
		{
			Name:              "English",
			LanguageCulture:   "en-US",
			FlagImageFileName: "us.png",
			Published:         true,
			DisplayOrder:      1,
		},
		{
			Name:              "Deutsch",
			LanguageCulture:   "de-DE",
			FlagImageFileName: "de.png",
			Published:         false,
			DisplayOrder:      2,
		},
	}

	for i := range languages {
		if languages[i].LanguageCulture == d.install.DefaultCulture {
			languages[i].Published = true
			languages[i].DisplayOrder = 0
		}
	}

	return languages
}

// TaxCategories returns the tax classes products are assigned to.
func (d *Default) TaxCategories() []models.TaxCategory {
	return []models.TaxCategory{
		{Name: "Books", DisplayOrder: 1},
		{Name: "Electronics & Software", DisplayOrder: 5},
		{Name: "Apparel & Shoes", DisplayOrder: 10},
		{Name: "Tax free", DisplayOrder: 20},
	}
}
