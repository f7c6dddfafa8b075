package models

// Country represents a country customers can be billed or shipped to.
type Country struct {
	ID uint64 `gorm:"primaryKey"`
	// Name is the english display name of the country.
	Name string `gorm:"size:100;not null" validate:"required"`
	// TwoLetterIsoCode is the ISO 3166-1 alpha-2 code.
	TwoLetterIsoCode string `gorm:"size:2;not null" validate:"required,len=2"`
	// ThreeLetterIsoCode is the ISO 3166-1 alpha-3 code.
	ThreeLetterIsoCode string `gorm:"size:3;not null" validate:"required,len=3"`
	// NumericIsoCode is the ISO 3166-1 numeric code.
	NumericIsoCode int `validate:"required"`
	AllowsBilling  bool
	AllowsShipping bool
	Published      bool
	DisplayOrder   int
	StateProvinces []StateProvince `gorm:"foreignKey:CountryID"`
}

// StateProvince represents a state or province of a country.
type StateProvince struct {
	ID           uint64 `gorm:"primaryKey"`
	CountryID    uint64 `gorm:"index;not null"`
	Name         string `gorm:"size:100;not null" validate:"required"`
	Abbreviation string `gorm:"size:10"`
	Published    bool
	DisplayOrder int
}
