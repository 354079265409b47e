package commands

import (
	"errors"
	"os"

	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// removes file if it exists
func removeFile(file, description string) error {
	if file == "" {
		return nil
	}

	if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	logger.New().Info().Str("file", file).Msgf("removed %s", description)

	return nil
}

// creates and returns the "clean" command
func clean() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clears the accessory cache and log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := removeFile(viper.GetString("database-file"), "accessory cache"); err != nil {
				return err
			}

			return removeFile(viper.GetString("log-file"), "log file")
		},
	}

	return cmd
}
