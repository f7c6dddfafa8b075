package seed

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoStorefront/GoStorefront/internal/catalog/attrcombo"
	"github.com/GoStorefront/GoStorefront/internal/config"
	"github.com/GoStorefront/GoStorefront/internal/db/models"
)

// stubProvider is an in-memory Provider test double.
type stubProvider struct {
	currencies    []models.Currency
	countries     []models.Country
	languages     []models.Language
	taxCategories []models.TaxCategory
	settings      []any
	pictures      []models.Picture
	categories    []models.Category
	manufacturers []models.Manufacturer
	products      []ProductSeed
	forumGroups   []models.ForumGroup
}

func (p *stubProvider) Currencies() []models.Currency        { return p.currencies }
func (p *stubProvider) Countries() []models.Country          { return p.countries }
func (p *stubProvider) Languages() []models.Language         { return p.languages }
func (p *stubProvider) TaxCategories() []models.TaxCategory  { return p.taxCategories }
func (p *stubProvider) Settings() []any                      { return p.settings }
func (p *stubProvider) Pictures() []models.Picture           { return p.pictures }
func (p *stubProvider) Categories() []models.Category        { return p.categories }
func (p *stubProvider) Manufacturers() []models.Manufacturer { return p.manufacturers }
func (p *stubProvider) Products() []ProductSeed              { return p.products }
func (p *stubProvider) ForumGroups() []models.ForumGroup     { return p.forumGroups }

// InstallerSettings is a flattenable settings object for the tests.
type InstallerSettings struct {
	StoreName string
	PageSize  int
}

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

func minimalProvider() *stubProvider {
	return &stubProvider{
		currencies: []models.Currency{
			{Name: "US Dollar", CurrencyCode: "USD", Rate: decimal.NewFromInt(1), Published: true},
		},
		countries: []models.Country{
			{
				Name: "United States", TwoLetterIsoCode: "US", ThreeLetterIsoCode: "USA",
				NumericIsoCode: 840, Published: true,
				StateProvinces: []models.StateProvince{
					{Name: "California", Abbreviation: "CA"},
					{Name: "Texas", Abbreviation: "TX"},
				},
			},
		},
		languages: []models.Language{
			{Name: "English", LanguageCulture: "en-US", Published: true},
		},
		taxCategories: []models.TaxCategory{
			{Name: "Books"},
			{Name: "Apparel"},
		},
		settings: []any{
			InstallerSettings{StoreName: "Test store", PageSize: 12},
		},
	}
}

func testInstall() config.Install {
	return config.Install{
		AdminEmail:     "admin@yourstore.com",
		AdminPassword:  "s3cret-pass",
		DefaultCulture: "en-US",
	}
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)

	_, err := New(nil, minimalProvider(), testInstall())
	require.ErrorIs(t, err, ErrDBNil)

	_, err = New(db, nil, testInstall())
	require.ErrorIs(t, err, ErrProviderNil)

	s, err := New(db, minimalProvider(), testInstall())
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestRunRequiredStages(t *testing.T) {
	db := setupTestDB(t)

	s, err := New(db, minimalProvider(), testInstall())
	require.NoError(t, err)

	require.NoError(t, s.Run())

	var count int64
	db.Model(&models.Currency{}).Count(&count)
	assert.EqualValues(t, 1, count)

	db.Model(&models.Country{}).Count(&count)
	assert.EqualValues(t, 1, count)

	db.Model(&models.StateProvince{}).Count(&count)
	assert.EqualValues(t, 2, count, "states are inserted with their country")

	db.Model(&models.Language{}).Count(&count)
	assert.EqualValues(t, 1, count)

	db.Model(&models.TaxCategory{}).Count(&count)
	assert.EqualValues(t, 2, count)

	db.Model(&models.Setting{}).Count(&count)
	assert.EqualValues(t, 2, count, "one row per flattened field")

	// the administrator account is created with a verifiable hash
	var admin models.Customer
	require.NoError(t, db.Where("email = ?", "admin@yourstore.com").First(&admin).Error)
	assert.True(t, admin.Active)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.VerifyPassword("s3cret-pass"))
	assert.False(t, admin.VerifyPassword("wrong"))

	// no sample data requested, no sample entities written
	db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRunFailFastOnThirdStage(t *testing.T) {
	db := setupTestDB(t)

	p := minimalProvider()
	// stage 3 (languages) fails on an unparsable culture
	p.languages = []models.Language{
		{Name: "Broken", LanguageCulture: "not a culture !!"},
	}

	s, err := New(db, p, testInstall())
	require.NoError(t, err)

	err = s.Run()
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "languages", stageErr.Stage)

	var count int64

	// stages 1 and 2 ran fully
	db.Model(&models.Currency{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.Country{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// stage 3 wrote nothing, stage 4 never started
	db.Model(&models.Language{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.TaxCategory{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRunValidationStopsStage(t *testing.T) {
	db := setupTestDB(t)

	p := minimalProvider()
	p.currencies = []models.Currency{
		{Name: "Broken", CurrencyCode: "US", Rate: decimal.NewFromInt(1)}, // code too short
	}

	s, err := New(db, p, testInstall())
	require.NoError(t, err)

	err = s.Run()
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "currencies", stageErr.Stage)
}

func TestStageErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &StageError{Stage: "currencies", Err: cause}

	assert.Contains(t, err.Error(), "currencies")
	require.ErrorIs(t, err, cause)
}

func TestRunSampleCatalog(t *testing.T) {
	db := setupTestDB(t)

	p := minimalProvider()
	p.pictures = []models.Picture{
		{SeoFilename: "jacket-red", MimeType: "image/jpeg"},
	}
	p.categories = []models.Category{
		{Name: "Apparel", Published: true},
	}
	p.manufacturers = []models.Manufacturer{
		{Name: "Acme", Published: true},
	}
	p.products = []ProductSeed{
		{
			Product: models.Product{
				Name:          "Crew neck t-shirt",
				Sku:           "BASE",
				Price:         decimal.RequireFromString("15.00"),
				StockQuantity: 100,
				Published:     true,
			},
			CategoryName:     "Apparel",
			ManufacturerName: "Acme",
			TaxCategoryName:  "Apparel",
			Attributes: []AttributeSeed{
				{
					AttributeAlias: "color",
					AttributeName:  "Color",
					ControlType:    models.ControlTypeBoxes,
					IsRequired:     true,
					DisplayOrder:   1,
					Values: []ValueSeed{
						{Alias: "red", Name: "Red", DisplayOrder: 1},
						{Alias: "blue", Name: "Blue", DisplayOrder: 2},
					},
				},
				{
					AttributeAlias: "size",
					AttributeName:  "Size",
					ControlType:    models.ControlTypeDropdownList,
					IsRequired:     true,
					DisplayOrder:   2,
					Values: []ValueSeed{
						{Alias: "S", Name: "Small", DisplayOrder: 1},
						{Alias: "M", Name: "Medium", DisplayOrder: 2},
						{Alias: "L", Name: "Large", DisplayOrder: 3},
					},
				},
			},
		},
	}
	p.forumGroups = []models.ForumGroup{
		{Name: "General", Forums: []models.Forum{{Name: "New Products"}}},
	}

	install := testInstall()
	install.SampleData = true

	s, err := New(db, p, install)
	require.NoError(t, err)

	require.NoError(t, s.Run())

	// shared attribute definitions created once per alias
	var attrs []models.ProductAttribute
	require.NoError(t, db.Order("id").Find(&attrs).Error)
	require.Len(t, attrs, 2)
	assert.Equal(t, "color", attrs[0].Alias)
	assert.Equal(t, "size", attrs[1].Alias)

	var assignments []models.ProductVariantAttribute
	require.NoError(t, db.Order("display_order").Find(&assignments).Error)
	require.Len(t, assignments, 2)

	var values []models.ProductVariantAttributeValue
	require.NoError(t, db.Find(&values).Error)
	assert.Len(t, values, 5)

	// 2 colors x 3 sizes
	var combos []models.ProductVariantAttributeCombination
	require.NoError(t, db.Order("id").Find(&combos).Error)
	require.Len(t, combos, 6)

	skus := make([]string, 0, len(combos))
	encodings := make(map[string]struct{})

	for _, c := range combos {
		skus = append(skus, c.Sku)
		encodings[c.AttributesXML] = struct{}{}

		decoded, err := attrcombo.Decode(c.AttributesXML)
		require.NoError(t, err)
		assert.Len(t, decoded, 2)
	}

	assert.Equal(t, []string{
		"BASE-red-s", "BASE-red-m", "BASE-red-l",
		"BASE-blue-s", "BASE-blue-m", "BASE-blue-l",
	}, skus)
	assert.Len(t, encodings, 6, "encoded selections must be distinct")

	// red combinations resolved the red sample picture
	for _, c := range combos {
		if c.Sku == "BASE-red-s" {
			assert.Len(t, c.AssignedPictureIDs, 1)
		}
	}

	var count int64
	db.Model(&models.Forum{}).Count(&count)
	assert.EqualValues(t, 1, count, "forums are inserted with their group")
}
