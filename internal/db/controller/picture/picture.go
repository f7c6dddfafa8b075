// Package picture provides lookup operations for stored picture metadata.
package picture

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoStorefront/GoStorefront/internal/db/models"
)

var (
	// ErrPictureNotFound is returned when no picture matches the lookup.
	ErrPictureNotFound = errors.New("picture not found")
	// ErrPatternEmpty is returned when the lookup pattern is empty.
	ErrPatternEmpty = errors.New("picture name pattern cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Finder adapts the package functions to the lookup interface the
// combination generator consumes.
type Finder struct {
	DB *gorm.DB
}

// FindBySubstring implements the generator's picture lookup.
func (f Finder) FindBySubstring(pattern string) (*models.Picture, error) {
	return FindBySubstring(f.DB, pattern)
}

// FindBySubstring retrieves the first picture whose SEO filename contains the
// given pattern. Ordering by ID keeps the result stable across runs.
func FindBySubstring(db *gorm.DB, pattern string) (*models.Picture, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if pattern == "" {
		return nil, ErrPatternEmpty
	}

	var pic models.Picture
	result := db.Where("seo_filename LIKE ?", "%"+pattern+"%").Order("id").First(&pic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPictureNotFound
		}
		return nil, result.Error
	}

	return &pic, nil
}
