package provider

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoStorefront/GoStorefront/internal/config"
	"github.com/GoStorefront/GoStorefront/internal/db/controller/setting"
	"github.com/GoStorefront/GoStorefront/internal/db/models"
	"github.com/GoStorefront/GoStorefront/internal/seed"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.Setting{},
		&models.Currency{},
		&models.Country{},
		&models.StateProvince{},
		&models.Language{},
		&models.TaxCategory{},
		&models.Customer{},
		&models.Picture{},
		&models.Category{},
		&models.Manufacturer{},
		&models.Product{},
		&models.ProductAttribute{},
		&models.ProductVariantAttribute{},
		&models.ProductVariantAttributeValue{},
		&models.ProductVariantAttributeCombination{},
		&models.ForumGroup{},
		&models.Forum{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestDefaultProviderFullRun(t *testing.T) {
	db := setupTestDB(t)

	install := config.Install{
		SampleData:     true,
		StoreName:      "Test store",
		StoreURL:       "http://localhost/",
		AdminEmail:     "admin@yourstore.com",
		AdminPassword:  "changeme-now",
		DefaultCulture: "en-US",
	}

	s, err := seed.New(db, New(install), install)
	require.NoError(t, err)

	require.NoError(t, s.Run())

	var count int64

	db.Model(&models.Currency{}).Count(&count)
	assert.EqualValues(t, 3, count)

	db.Model(&models.Country{}).Count(&count)
	assert.EqualValues(t, 3, count)

	db.Model(&models.StateProvince{}).Count(&count)
	assert.EqualValues(t, 5, count)

	db.Model(&models.Language{}).Count(&count)
	assert.EqualValues(t, 2, count)

	db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 3, count)

	// the store identity settings carry the configured values
	row, err := setting.Get(db, "storesettings.name")
	require.NoError(t, err)
	assert.Equal(t, []byte("Test store"), row.Value)

	// media settings are one opaque blob
	_, err = setting.Get(db, "provider.mediasettings")
	require.NoError(t, err)

	// the t-shirt crosses 2 colors x 3 sizes, the sunglasses are curated to 3
	var tshirt, sunglasses models.Product
	require.NoError(t, db.Where("sku = ?", "TS-CREW").First(&tshirt).Error)
	require.NoError(t, db.Where("sku = ?", "SG-RADAR").First(&sunglasses).Error)

	db.Model(&models.ProductVariantAttributeCombination{}).
		Where("product_id = ?", tshirt.ID).Count(&count)
	assert.EqualValues(t, 6, count)

	var curated []models.ProductVariantAttributeCombination
	require.NoError(t, db.Where("product_id = ?", sunglasses.ID).Order("id").Find(&curated).Error)
	require.Len(t, curated, 3)
	assert.Equal(t, "SG-RADAR-azure-matte-black", curated[0].Sku)
	assert.Equal(t, "SG-RADAR-silver-matte-black", curated[1].Sku)
	assert.Equal(t, "SG-RADAR-azure-polished-white", curated[2].Sku)
	assert.True(t, curated[2].AllowOutOfStockOrders)

	// the book has no attributes and therefore no combinations
	var book models.Product
	require.NoError(t, db.Where("sku = ?", "BK-COMP").First(&book).Error)
	db.Model(&models.ProductVariantAttributeCombination{}).
		Where("product_id = ?", book.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}
