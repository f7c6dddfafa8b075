package config

// DB holds the database configuration settings.
type DB struct {
	Engine   string // gorm driver to use: mysql, postgres or sqlite
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Path     string // database file path, sqlite only
}
