package provider

import (
	"github.com/shopspring/decimal"

	"github.com/GoStorefront/GoStorefront/internal/catalog/combination"
	"github.com/GoStorefront/GoStorefront/internal/db/models"
	"github.com/GoStorefront/GoStorefront/internal/seed"
)

// Pictures returns the sample picture metadata. Combination generation
// matches these filenames against value aliases, so the names embed them.
func (d *Default) Pictures() []models.Picture {
	return []models.Picture{
		{SeoFilename: "tshirt-red", MimeType: "image/jpeg"},
		{SeoFilename: "tshirt-blue", MimeType: "image/jpeg"},
		{SeoFilename: "sunglasses-lens-azure", MimeType: "image/jpeg"},
		{SeoFilename: "sunglasses-lens-silver", MimeType: "image/jpeg"},
		{SeoFilename: "book-computing-history", MimeType: "image/jpeg"},
	}
}

// Categories returns the sample catalog categories.
func (d *Default) Categories() []models.Category {
	return []models.Category{
		{Name: "Apparel & Shoes", PageSize: 12, Published: true, DisplayOrder: 1},
		{Name: "Electronics", PageSize: 12, Published: true, DisplayOrder: 2},
		{Name: "Books", PageSize: 12, Published: true, DisplayOrder: 3},
		{Name: "Accessories", PageSize: 12, Published: true, DisplayOrder: 4},
	}
}

// Manufacturers returns the sample brands.
func (d *Default) Manufacturers() []models.Manufacturer {
	return []models.Manufacturer{
		{Name: "Acme Apparel", PageSize: 12, Published: true, DisplayOrder: 1},
		{Name: "Contoso Optics", PageSize: 12, Published: true, DisplayOrder: 2},
	}
}

// Products returns the sample products with their variant attribute
// definitions. The t-shirt sells every color/size pairing, so it uses the
// full cross product; the sunglasses are curated because only some
// lens/frame pairings are sellable.
func (d *Default) Products() []seed.ProductSeed {
	return []seed.ProductSeed{
		{
			Product: models.Product{
				Name:             "Crew neck t-shirt",
				Sku:              "TS-CREW",
				ShortDescription: "Classic cotton crew neck t-shirt.",
				Price:            decimal.RequireFromString("15.00"),
				StockQuantity:    10000,
				Published:        true,
			},
			CategoryName:     "Apparel & Shoes",
			ManufacturerName: "Acme Apparel",
			TaxCategoryName:  "Apparel & Shoes",
			Attributes: []seed.AttributeSeed{
				{
					AttributeAlias: "color",
					AttributeName:  "Color",
					ControlType:    models.ControlTypeBoxes,
					IsRequired:     true,
					DisplayOrder:   1,
					Values: []seed.ValueSeed{
						{Alias: "red", Name: "Red", Color: "#8a374a", IsPreSelected: true, DisplayOrder: 1},
						{Alias: "blue", Name: "Blue", Color: "#47476f", DisplayOrder: 2},
					},
				},
				{
					AttributeAlias: "size",
					AttributeName:  "Size",
					ControlType:    models.ControlTypeDropdownList,
					IsRequired:     true,
					DisplayOrder:   2,
					Values: []seed.ValueSeed{
						{Alias: "s", Name: "Small", DisplayOrder: 1},
						{Alias: "m", Name: "Medium", IsPreSelected: true, DisplayOrder: 2},
						{Alias: "l", Name: "Large", PriceAdjustment: decimal.RequireFromString("2.00"), DisplayOrder: 3},
					},
				},
			},
		},
		{
			Product: models.Product{
				Name:             "Radar sunglasses",
				Sku:              "SG-RADAR",
				ShortDescription: "Sport sunglasses with interchangeable lenses.",
				Price:            decimal.RequireFromString("120.00"),
				StockQuantity:    500,
				Published:        true,
			},
			CategoryName:     "Accessories",
			ManufacturerName: "Contoso Optics",
			TaxCategoryName:  "Apparel & Shoes",
			Attributes: []seed.AttributeSeed{
				{
					AttributeAlias: "lens-color",
					AttributeName:  "Lens Color",
					ControlType:    models.ControlTypeRadioList,
					IsRequired:     true,
					DisplayOrder:   1,
					Values: []seed.ValueSeed{
						{Alias: "azure", Name: "Azure", IsPreSelected: true, DisplayOrder: 1},
						{Alias: "silver", Name: "Silver", PriceAdjustment: decimal.RequireFromString("10.00"), DisplayOrder: 2},
					},
				},
				{
					AttributeAlias: "frame-color",
					AttributeName:  "Frame Color",
					ControlType:    models.ControlTypeBoxes,
					IsRequired:     true,
					DisplayOrder:   2,
					Values: []seed.ValueSeed{
						{Alias: "matte-black", Name: "Matte Black", Color: "#111111", IsPreSelected: true, DisplayOrder: 1},
						{Alias: "polished-white", Name: "Polished White", Color: "#f5f5f5", DisplayOrder: 2},
					},
				},
			},
			// marketing sells only these lens/frame pairings
			Curated: []combination.Curated{
				{ValueAliases: []string{"azure", "matte-black"}, StockQuantity: 200, IsActive: true},
				{ValueAliases: []string{"silver", "matte-black"}, StockQuantity: 150, IsActive: true},
				{ValueAliases: []string{"azure", "polished-white"}, StockQuantity: 0, IsActive: true, AllowOutOfStockOrders: true},
			},
		},
		{
			Product: models.Product{
				Name:             "A Brief History of Computing",
				Sku:              "BK-COMP",
				ShortDescription: "Hardcover, 300 pages.",
				Price:            decimal.RequireFromString("24.90"),
				StockQuantity:    300,
				Published:        true,
			},
			CategoryName:    "Books",
			TaxCategoryName: "Books",
		},
	}
}

// ForumGroups returns the sample community forums.
func (d *Default) ForumGroups() []models.ForumGroup {
	return []models.ForumGroup{
		{
			Name:         "General",
			DisplayOrder: 1,
			Forums: []models.Forum{
				{Name: "New Products", Description: "Discuss new products and industry trends", DisplayOrder: 1},
				{Name: "Packaging & Shipping", Description: "Discuss packaging and shipping", DisplayOrder: 20},
			},
		},
	}
}
