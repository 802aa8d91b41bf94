package config

import (
	"os"
	"strings"

	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Load reads the yaml config (path from CONFIG_PATH, default config.yaml) and
// lets HYDROMON_* environment variables override any key.
func Load() error {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	viper.SetConfigFile(path)
	viper.SetEnvPrefix("hydromon")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperHTTPAddr, ":8080")
	viper.SetDefault(constants.ViperCORSOrigins, []string{"http://localhost:3000", "http://localhost:5173"})
	viper.SetDefault(constants.ViperLogLevel, "info")

	if err := viper.ReadInConfig(); err != nil {
		// env-only configuration is allowed
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}
