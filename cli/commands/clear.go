package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

/**
 * Command to remove config and log files
 */
func clear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clears config and log files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := removeFile(viper.GetString("config-file"), "config file"); err != nil {
				return err
			}

			return removeFile(viper.GetString("log-file"), "log file")
		},
	}

	return cmd
}
