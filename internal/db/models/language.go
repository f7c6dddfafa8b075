package models

// Language represents a localization language of the store.
type Language struct {
	ID uint64 `gorm:"primaryKey"`
	// Name is the display name of the language.
	Name string `gorm:"size:100;not null" validate:"required"`
	// LanguageCulture is the BCP 47 culture tag, e.g. "en-US".
	LanguageCulture string `gorm:"size:20;not null" validate:"required"`
	// FlagImageFileName is the file name of the flag icon shown in the language switcher.
	FlagImageFileName string `gorm:"size:50"`
	Published         bool
	DisplayOrder      int
}
