// Package main provides the entry point for the GoStorefront installation
// seeder. It populates a fresh storefront database with the mandatory
// reference data (currencies, countries, languages, tax categories, settings)
// and, optionally, a sample catalog with products, variant attributes and
// attribute combinations. The application uses gorm for data persistence and
// runs the population steps as a fixed, strictly ordered pipeline.
package main
