// Package provider supplies the literal seed data of the installer: the
// mandatory reference data every store needs and a small sample catalog.
// The seeding pipeline consumes it through the seed.Provider interface.
package provider

import (
	"github.com/GoStorefront/GoStorefront/internal/config"
)

// Default is the built-in data provider.
type Default struct {
	install config.Install
}

// New creates the default provider for one installation run.
func New(install config.Install) *Default {
	return &Default{install: install}
}
