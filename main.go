package main

import (
	"context"
	"errors"
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robgonnella/noip-sensor/cli/commands"
	app_info "github.com/robgonnella/noip-sensor/internal/app-info"
	"github.com/robgonnella/noip-sensor/internal/config"
	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/spf13/viper"
)

func setConfigPaths() (string, error) {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return "", err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	configFile := path.Join(configDir, app_info.NAME+".yml")

	logFile := path.Join(configDir, app_info.NAME+".log")

	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return "", err
	}

	cacheDir := path.Join(userCacheDir, app_info.NAME)

	if err := os.MkdirAll(cacheDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	dbFile := path.Join(cacheDir, app_info.NAME+".db")

	// share location of files and directories globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)
	viper.Set("cache-dir", cacheDir)
	viper.Set("database-file", dbFile)

	// NOIP_SENSOR_UPDATE_URL, NOIP_SENSOR_IPINFO_URL, NOIP_SENSOR_API_LISTEN
	viper.SetEnvPrefix("NOIP_SENSOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return configFile, nil
}

// Entry point for the cli.
func main() {
	log := logger.New()

	// .env is optional, it only supplies credentials referenced from config
	_ = godotenv.Load()

	configFile, err := setConfigPaths()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		if err := config.Write(*config.Default()); err != nil {
			log.Fatal().Err(err).Msg("failed to write default config")
		}

		log.Info().Str("file", configFile).Msg("wrote default config")
	}

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Version: app_info.VERSION,
	})

	// Allows "grepping" of command output
	cmd.SetOutput(os.Stdout)

	// execute the cobra command and exit with error code if necessary
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
