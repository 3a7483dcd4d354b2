package config

import (
	"os"

	"github.com/pseudomuto/dbtfmt/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the project config from DBTFMT_CONFIG or .dbtfmt.yaml. When neither
	// exists the defaults are used so dbtfmt works outside of a project.
	func() (*Config, error) {
		path := os.Getenv(consts.EnvConfig)
		if path == "" {
			path = consts.DefaultConfigFile
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Default(), nil
		}

		cfg, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}

		return cfg, cfg.RegisterDialects()
	},
))
