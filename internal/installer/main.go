// Package installer wires configuration, database and seeding pipeline into
// the one-shot installation run started by the install command.
package installer

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoStorefront/GoStorefront/internal/config"
	"github.com/GoStorefront/GoStorefront/internal/db/dsn"
	"github.com/GoStorefront/GoStorefront/internal/db/models"
	"github.com/GoStorefront/GoStorefront/internal/logger"
	"github.com/GoStorefront/GoStorefront/internal/seed"
	"github.com/GoStorefront/GoStorefront/internal/seed/provider"
)

// Installer represents one installation run against one database.
type Installer struct {
	cfg *config.Config
}

// New creates a new Installer instance with the provided configuration.
func New(cfg *config.Config) *Installer {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	return &Installer{cfg: cfg}
}

// Run opens the database, migrates the schema and executes the seeding
// pipeline. A partial run can leave a partially seeded database; the
// operator decides how to proceed from the reported stage failure.
func (i *Installer) Run() error {
	if err := logger.Init(i.cfg.Log); err != nil {
		return errors.Wrap(err, "init logger")
	}

	db, err := openDatabase(i.cfg)
	if err != nil {
		return errors.Wrap(err, "connect database")
	}

	if err = autoMigrate(db); err != nil {
		return errors.Wrap(err, "migrate database")
	}

	seeder, err := seed.New(db, provider.New(i.cfg.Install), i.cfg.Install)
	if err != nil {
		return errors.Wrap(err, "create seeder")
	}

	if err = seeder.Run(); err != nil {
		var stageErr *seed.StageError
		if errors.As(err, &stageErr) {
			log.Error().Str("stage", stageErr.Stage).Err(stageErr.Err).Msg("seeding failed")
		}

		return err //nolint:wrapcheck
	}

	log.Info().Str("db", i.cfg.DB.Engine).Msg("installation finished")

	return nil
}

// openDatabase opens the gorm handle for the configured engine.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.Engine {
	case "postgres":
		dialector = gormpostgres.Open(dsn.Create(cfg))
	case "sqlite":
		dialector = sqlite.Open(dsn.Create(cfg))
	default:
		dialector = gormmysql.Open(dsn.Create(cfg))
	}

	return gorm.Open(dialector, &gorm.Config{}) //nolint:wrapcheck
}

// autoMigrate creates the schema for every seeded entity family.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate( //nolint:wrapcheck
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
}
