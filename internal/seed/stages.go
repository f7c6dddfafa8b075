package seed

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/GoStorefront/GoStorefront/internal/catalog/combination"
	"github.com/GoStorefront/GoStorefront/internal/db/models"
	"github.com/GoStorefront/GoStorefront/internal/uniuri"
)

// Stage is one named step of the pipeline, persisting one entity family.
type Stage struct {
	Name string
	Run  func(*Seeder) error
}

// stages returns the pipeline in dependency order. The required reference
// data always runs; the sample catalog stages are appended only when sample
// data was requested.
func (s *Seeder) stages() []Stage {
	list := []Stage{
		{Name: "currencies", Run: (*Seeder).installCurrencies},
		{Name: "countries", Run: (*Seeder).installCountries},
		{Name: "languages", Run: (*Seeder).installLanguages},
		{Name: "tax-categories", Run: (*Seeder).installTaxCategories},
		{Name: "settings", Run: (*Seeder).installSettings},
		{Name: "customers", Run: (*Seeder).installCustomers},
	}

	if s.install.SampleData {
		list = append(list,
			Stage{Name: "pictures", Run: (*Seeder).installPictures},
			Stage{Name: "categories", Run: (*Seeder).installCategories},
			Stage{Name: "manufacturers", Run: (*Seeder).installManufacturers},
			Stage{Name: "products", Run: (*Seeder).installProducts},
			Stage{Name: "variant-attributes", Run: (*Seeder).installVariantAttributes},
			Stage{Name: "variant-combinations", Run: (*Seeder).installVariantCombinations},
			Stage{Name: "forums", Run: (*Seeder).installForums},
		)
	}

	return list
}

func (s *Seeder) installCurrencies() error {
	return bulkInsert(s, s.provider.Currencies())
}

func (s *Seeder) installCountries() error {
	// state/province children are inserted with their parent
	return bulkInsert(s, s.provider.Countries())
}

func (s *Seeder) installLanguages() error {
	langs := s.provider.Languages()

	for i := range langs {
		if _, err := language.Parse(langs[i].LanguageCulture); err != nil {
			return errors.Wrapf(err, "language %q has invalid culture %q",
				langs[i].Name, langs[i].LanguageCulture)
		}
	}

	return bulkInsert(s, langs)
}

func (s *Seeder) installTaxCategories() error {
	return bulkInsert(s, s.provider.TaxCategories())
}

func (s *Seeder) installSettings() error {
	for _, obj := range s.provider.Settings() {
		if err := s.settings.Persist(obj); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func (s *Seeder) installCustomers() error {
	password := s.install.AdminPassword
	if password == "" {
		password = uniuri.New()
		log.Info().Str("password", password).Msg("generated administrator password")
	}

	admin := models.Customer{
		Active:   true,
		Email:    s.install.AdminEmail,
		Username: s.install.AdminEmail,
		Password: models.HashPassword(password),
		IsAdmin:  true,
	}

	return s.db.Create(&admin).Error //nolint:wrapcheck
}

func (s *Seeder) installPictures() error {
	return bulkInsert(s, s.provider.Pictures())
}

func (s *Seeder) installCategories() error {
	return bulkInsert(s, s.provider.Categories())
}

func (s *Seeder) installManufacturers() error {
	return bulkInsert(s, s.provider.Manufacturers())
}

// installProducts resolves category, manufacturer and tax class by name
// against the entities persisted in earlier stages, then inserts the
// products. The lookup maps are built once for the whole stage.
func (s *Seeder) installProducts() error {
	categories, err := nameIndex(s.db, &models.Category{})
	if err != nil {
		return errors.Wrap(err, "index categories")
	}

	manufacturers, err := nameIndex(s.db, &models.Manufacturer{})
	if err != nil {
		return errors.Wrap(err, "index manufacturers")
	}

	taxCategories, err := nameIndex(s.db, &models.TaxCategory{})
	if err != nil {
		return errors.Wrap(err, "index tax categories")
	}

	for _, ps := range s.provider.Products() {
		product := ps.Product

		if product.CategoryID, err = resolveName(categories, ps.CategoryName); err != nil {
			return errors.Wrapf(err, "product %q category %q", product.Name, ps.CategoryName)
		}

		if product.ManufacturerID, err = resolveName(manufacturers, ps.ManufacturerName); err != nil {
			return errors.Wrapf(err, "product %q manufacturer %q", product.Name, ps.ManufacturerName)
		}

		if product.TaxCategoryID, err = resolveName(taxCategories, ps.TaxCategoryName); err != nil {
			return errors.Wrapf(err, "product %q tax category %q", product.Name, ps.TaxCategoryName)
		}

		if err = s.validate.Struct(&product); err != nil {
			return errors.Wrap(err, "entity validation failed")
		}

		if err = s.db.Create(&product).Error; err != nil {
			return errors.Wrapf(err, "insert product %q", product.Name)
		}
	}

	return nil
}

// installVariantAttributes creates the shared attribute definitions, then one
// assignment per (product, attribute) with its selectable values. Identity is
// assigned on insert and reused for the child rows.
func (s *Seeder) installVariantAttributes() error {
	seeds := s.provider.Products()

	// shared attribute definitions, created once per alias
	created := make(map[string]uint64)

	for _, ps := range seeds {
		for _, as := range ps.Attributes {
			if _, ok := created[as.AttributeAlias]; ok {
				continue
			}

			attr := models.ProductAttribute{
				Name:  as.AttributeName,
				Alias: as.AttributeAlias,
			}
			if err := s.db.Create(&attr).Error; err != nil {
				return errors.Wrapf(err, "insert attribute %q", as.AttributeAlias)
			}

			created[as.AttributeAlias] = attr.ID
		}
	}

	// re-query by alias; lookups expect exactly one match per alias
	attrIDs, err := attributeIndex(s.db)
	if err != nil {
		return errors.Wrap(err, "index attributes")
	}

	for _, ps := range seeds {
		productID, err := s.productIDBySku(ps.Product.Sku)
		if err != nil {
			return err
		}

		for _, as := range ps.Attributes {
			attrID, err := resolveName(attrIDs, as.AttributeAlias)
			if err != nil {
				return errors.Wrapf(err, "attribute %q", as.AttributeAlias)
			}

			assignment := models.ProductVariantAttribute{
				ProductID:            productID,
				ProductAttributeID:   attrID,
				IsRequired:           as.IsRequired,
				AttributeControlType: as.ControlType,
				DisplayOrder:         as.DisplayOrder,
			}
			if err := s.db.Create(&assignment).Error; err != nil {
				return errors.Wrapf(err, "insert assignment %q for product %d", as.AttributeAlias, productID)
			}

			values := make([]models.ProductVariantAttributeValue, len(as.Values))
			for i, vs := range as.Values {
				values[i] = models.ProductVariantAttributeValue{
					ProductVariantAttributeID: assignment.ID,
					Alias:                     vs.Alias,
					Name:                      vs.Name,
					PriceAdjustment:           vs.PriceAdjustment,
					Quantity:                  vs.Quantity,
					IsPreSelected:             vs.IsPreSelected,
					Color:                     vs.Color,
					DisplayOrder:              vs.DisplayOrder,
				}
			}

			if err := bulkInsert(s, values); err != nil {
				return errors.Wrapf(err, "insert values of assignment %q", as.AttributeAlias)
			}
		}
	}

	return nil
}

// installVariantCombinations reads back the persisted assignments and values
// of each product and generates its sellable combinations, curated when the
// seed names explicit tuples, full cross product otherwise.
func (s *Seeder) installVariantCombinations() error {
	for _, ps := range s.provider.Products() {
		if len(ps.Attributes) == 0 {
			continue
		}

		product, err := s.productBySku(ps.Product.Sku)
		if err != nil {
			return err
		}

		var assignments []models.ProductVariantAttribute
		err = s.db.
			Preload("Values", func(db *gorm.DB) *gorm.DB {
				return db.Order("display_order, id")
			}).
			Where("product_id = ?", product.ID).
			Order("display_order, id").
			Find(&assignments).Error
		if err != nil {
			return errors.Wrapf(err, "load assignments of product %q", product.Name)
		}

		groups := make([]combination.AssignmentValues, len(assignments))
		for i, a := range assignments {
			groups[i] = combination.AssignmentValues{Assignment: a, Values: a.Values}
		}

		var combos []models.ProductVariantAttributeCombination
		if len(ps.Curated) > 0 {
			combos = s.combos.GenerateCurated(product, groups, ps.Curated)
		} else {
			combos = s.combos.Generate(product, groups)
		}

		if len(combos) == 0 {
			continue
		}

		if err := s.db.Create(&combos).Error; err != nil {
			return errors.Wrapf(err, "insert combinations of product %q", product.Name)
		}
	}

	return nil
}

func (s *Seeder) installForums() error {
	return bulkInsert(s, s.provider.ForumGroups())
}

// nameIndex builds a name → id map of one entity family in a single query.
func nameIndex(db *gorm.DB, model any) (map[string]uint64, error) {
	var rows []struct {
		ID   uint64
		Name string
	}

	if err := db.Model(model).Select("id", "name").Find(&rows).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	index := make(map[string]uint64, len(rows))
	for _, row := range rows {
		index[row.Name] = row.ID
	}

	return index, nil
}

// attributeIndex builds an alias → id map over the attribute definitions.
func attributeIndex(db *gorm.DB) (map[string]uint64, error) {
	var attrs []models.ProductAttribute
	if err := db.Find(&attrs).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	index := make(map[string]uint64, len(attrs))
	for _, attr := range attrs {
		index[attr.Alias] = attr.ID
	}

	return index, nil
}

// resolveName maps an optional name to its id. Empty names resolve to zero;
// a non-empty name without a match is a typed error instead of a silent miss.
func resolveName(index map[string]uint64, name string) (uint64, error) {
	if name == "" {
		return 0, nil
	}

	id, ok := index[name]
	if !ok {
		return 0, ErrLookupNotFound
	}

	return id, nil
}

func (s *Seeder) productIDBySku(sku string) (uint64, error) {
	product, err := s.productBySku(sku)
	if err != nil {
		return 0, err
	}

	return product.ID, nil
}

func (s *Seeder) productBySku(sku string) (*models.Product, error) {
	var product models.Product

	err := s.db.Where("sku = ?", sku).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrProductNotFound, "sku %q", sku)
		}

		return nil, err //nolint:wrapcheck
	}

	return &product, nil
}
