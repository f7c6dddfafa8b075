package app

import (
	"github.com/spf13/cobra"

	"github.com/GoStorefront/GoStorefront/internal/config"
	"github.com/GoStorefront/GoStorefront/internal/installer"
)

func init() { //nolint: gochecknoinits
	installCmd.Flags().StringVar(&configPath, "config", "", "Path to the etc/ config directory")

	installCmd.Flags().BoolVar(
		&sampleData,
		"sample-data",
		false,
		"Seed the sample catalog in addition to the required reference data",
	)

	rootCmd.AddCommand(installCmd)
}

var (
	configPath string // Path to the configuration directory

	cfg        config.Config
	err        error
	sampleData bool

	installCmd = &cobra.Command{
		Use:   "install",
		Short: "Seed a fresh storefront database",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if sampleData {
				cfg.Install.SampleData = true
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			inst := installer.New(&cfg)

			return inst.Run()
		},
	}
)
