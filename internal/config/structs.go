package config

import (
	"github.com/GoStorefront/GoStorefront/internal/logger"
)

// Install holds the parameters of one installation run.
type Install struct {
	SampleData     bool   // seed the sample catalog in addition to required data
	StoreName      string // name of the store, used for the seeded store settings
	StoreURL       string // public base url of the store
	AdminEmail     string // email address of the administrator account to create
	AdminPassword  string // plaintext admin password; generated when empty
	DefaultCulture string // culture of the default language, e.g. "en-US"
}

// Config overall data structure.
type Config struct {
	DevMode bool // enable dev mode for development
	DB      DB
	Log     logger.Log
	Title   string
	Install Install
}
