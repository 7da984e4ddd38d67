// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cdarip/cdarip/constant"
	"github.com/cdarip/cdarip/filesystem"
	"github.com/cdarip/cdarip/icon"
	"github.com/cdarip/cdarip/key"
	"github.com/cdarip/cdarip/where"
	"github.com/andybalholm/cascadia"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, CDARIP_* environment variables and the TOML file, in increasing priority.
// A missing file is not an error.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	if err != nil && !errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return fmt.Errorf("read config: %w", err)
	}

	return Validate()
}

// Validate rejects values that would only fail later, deep inside a command.
func Validate() error {
	if variant := viper.GetString(key.IconsVariant); !lo.Contains(icon.AvailableVariants(), variant) {
		return fmt.Errorf("%s: unknown icons variant %q", key.IconsVariant, variant)
	}

	if _, err := logrus.ParseLevel(viper.GetString(key.LogsLevel)); err != nil {
		return fmt.Errorf("%s: %w", key.LogsLevel, err)
	}

	if selector := viper.GetString(key.PageTitleSelector); selector != "" {
		if _, err := cascadia.Compile(selector); err != nil {
			return fmt.Errorf("%s: %w", key.PageTitleSelector, err)
		}
	}

	if strings.TrimSpace(viper.GetString(key.FFmpegBinary)) == "" {
		return fmt.Errorf("%s must not be empty", key.FFmpegBinary)
	}

	return nil
}
