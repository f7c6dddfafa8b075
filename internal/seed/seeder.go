// Package seed implements the seeding orchestrator: a fixed, ordered pipeline
// of population stages run strictly one after another against a fresh
// database. There is no retry, no rollback and no idempotence; re-running
// against an already seeded database fails on unique-key violations.
package seed

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/GoStorefront/GoStorefront/internal/catalog/combination"
	"github.com/GoStorefront/GoStorefront/internal/config"
	picturectl "github.com/GoStorefront/GoStorefront/internal/db/controller/picture"
	"github.com/GoStorefront/GoStorefront/internal/db/models"
	"github.com/GoStorefront/GoStorefront/internal/settings"
)

// ValueSeed describes one selectable option of an assignment to create.
type ValueSeed struct {
	Alias           string
	Name            string
	PriceAdjustment decimal.Decimal
	Quantity        int
	IsPreSelected   bool
	Color           string
	DisplayOrder    int
}

// AttributeSeed describes one variant attribute assignment of a product.
type AttributeSeed struct {
	// AttributeAlias identifies the shared ProductAttribute definition;
	// attributes with the same alias are created once and reused.
	AttributeAlias string
	AttributeName  string
	ControlType    models.AttributeControlType
	IsRequired     bool
	DisplayOrder   int
	Values         []ValueSeed
}

// ProductSeed couples a product with the names of its collaborator entities
// and its variant attribute definitions. Foreign keys are resolved by name
// lookup against the entities persisted in earlier stages.
type ProductSeed struct {
	Product          models.Product
	CategoryName     string
	ManufacturerName string
	TaxCategoryName  string
	Attributes       []AttributeSeed
	// Curated, when non-empty, replaces the full cross product with the
	// hand-selected combination list.
	Curated []combination.Curated
}

// Provider supplies the in-memory entity lists each stage persists. The
// literal data lives behind this interface; tests replace it with stubs.
type Provider interface {
	Currencies() []models.Currency
	Countries() []models.Country
	Languages() []models.Language
	TaxCategories() []models.TaxCategory
	Settings() []any
	Pictures() []models.Picture
	Categories() []models.Category
	Manufacturers() []models.Manufacturer
	Products() []ProductSeed
	ForumGroups() []models.ForumGroup
}

// Seeder runs the population pipeline. It is the single owner of the storage
// handle for the duration of the run; everything is synchronous and
// single-threaded.
type Seeder struct {
	db       *gorm.DB
	provider Provider
	install  config.Install

	validate *validator.Validate
	settings *settings.Persister
	combos   *combination.Generator
}

// New creates a Seeder for one installation run.
func New(db *gorm.DB, provider Provider, install config.Install) (*Seeder, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if provider == nil {
		return nil, ErrProviderNil
	}

	return &Seeder{
		db:       db,
		provider: provider,
		install:  install,
		validate: validator.New(),
		settings: settings.NewPersister(db),
		combos:   combination.New(picturectl.Finder{DB: db}),
	}, nil
}

// Run executes all stages in order. The first failing stage aborts the run;
// the returned error is a *StageError naming that stage. Stage N+1 never
// starts before stage N completed successfully.
func (s *Seeder) Run() error {
	for _, stage := range s.stages() {
		log.Info().Str("stage", stage.Name).Msg("seeding")

		if err := stage.Run(s); err != nil {
			return &StageError{Stage: stage.Name, Err: err}
		}
	}

	log.Info().Msg("seeding completed")

	return nil
}

// bulkInsert validates and persists one entity family in a single batch.
func bulkInsert[T any](s *Seeder, entities []T) error {
	if len(entities) == 0 {
		return nil
	}

	for i := range entities {
		if err := s.validate.Struct(&entities[i]); err != nil {
			return errors.Wrap(err, "entity validation failed")
		}
	}

	return s.db.Create(&entities).Error //nolint:wrapcheck
}
