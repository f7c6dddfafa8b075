package config

import (
	"errors"
)

var (
	// ErrDBEngineEmpty error if config db.engine is empty.
	ErrDBEngineEmpty = errors.New("toml config db.engine can not be empty")

	// ErrDBEngineUnknown error if config db.engine names an unsupported driver.
	ErrDBEngineUnknown = errors.New("toml config db.engine must be one of mysql, postgres, sqlite")

	// ErrAdminEmailEmpty error if config install.adminemail is empty.
	ErrAdminEmailEmpty = errors.New("toml config install.adminemail can not be empty")

	// ErrDefaultCultureEmpty error if config install.defaultculture is empty.
	ErrDefaultCultureEmpty = errors.New("toml config install.defaultculture can not be empty")
)
