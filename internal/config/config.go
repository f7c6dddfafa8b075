// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv("GO_STOREFRONT_CONFIG_JSON")

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to merge config from env")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings for the installer.
// Only the parameters the seeding run itself depends on are checked here;
// everything else is validated where it is consumed.
func validate(c Config) error {
	invalidErrMessage := "invalid config"

	if c.DB.Engine == "" {
		return errors.Wrap(ErrDBEngineEmpty, invalidErrMessage)
	}

	if _, ok := supportedEngines[c.DB.Engine]; !ok {
		return errors.Wrap(ErrDBEngineUnknown, invalidErrMessage)
	}

	if c.Install.AdminEmail == "" {
		return errors.Wrap(ErrAdminEmailEmpty, invalidErrMessage)
	}

	if c.Install.DefaultCulture == "" {
		return errors.Wrap(ErrDefaultCultureEmpty, invalidErrMessage)
	}

	return nil
}

// supportedEngines lists the gorm drivers the installer can open.
var supportedEngines = map[string]struct{}{ //nolint:gochecknoglobals
	"mysql":    {},
	"postgres": {},
	"sqlite":   {},
}
