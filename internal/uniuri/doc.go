// Package uniuri generates cryptographically secure random strings, used by
// the installer to create the initial administrator password when none is
// configured.
package uniuri
