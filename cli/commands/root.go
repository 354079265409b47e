package commands

import (
	"os"

	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Version string
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool
	var logToFile bool
	var configFile string

	cmd := &cobra.Command{
		Use:   "noip-sensor",
		Short: "Keeps No-IP hostnames updated and reports their status as contact sensors",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			if configFile == "" {
				// NOIP_SENSOR_CONFIG
				configFile = viper.GetString("config")
			}

			if configFile != "" {
				viper.Set("config-file", configFile)
			}

			if logToFile {
				file, err := os.OpenFile(
					viper.GetString("log-file"),
					os.O_APPEND|os.O_CREATE|os.O_WRONLY,
					0644,
				)

				if err != nil {
					return err
				}

				logger.GlobalSetLogFile(file)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, props)
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")
	cmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", false, "write logs to the log file instead of stderr")
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file")

	cmd.AddCommand(validate())
	cmd.AddCommand(status())
	cmd.AddCommand(clean())
	cmd.AddCommand(clear())
	cmd.AddCommand(version(props))

	return cmd
}
