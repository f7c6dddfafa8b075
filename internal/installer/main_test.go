package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoStorefront/GoStorefront/internal/config"
	"github.com/GoStorefront/GoStorefront/internal/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Title: "GoStorefront Installer",
		DB: config.DB{
			Engine: "sqlite",
			Path:   ":memory:",
		},
		Log: logger.Log{
			LogLevel:    "error",
			AppName:     "gostorefront",
			ServiceName: "installer-test",
			Console:     logger.Console{Enabled: true},
		},
		Install: config.Install{
			SampleData:     true,
			StoreName:      "Test store",
			StoreURL:       "http://localhost/",
			AdminEmail:     "admin@yourstore.com",
			AdminPassword:  "changeme-now",
			DefaultCulture: "en-US",
		},
	}
}

func TestRun(t *testing.T) {
	inst := New(testConfig())
	require.NotNil(t, inst)

	require.NoError(t, inst.Run())
}

func TestRunBadLoggerConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Log.LogLevel = "chatty"

	inst := New(cfg)
	require.NotNil(t, inst)

	err := inst.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}
