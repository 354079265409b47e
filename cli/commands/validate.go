package commands

import (
	"fmt"

	"github.com/robgonnella/noip-sensor/internal/config"
	"github.com/robgonnella/noip-sensor/internal/exception"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// creates and returns the "validate" command
func validate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Checks the config file and reports problems for each device",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.New(viper.GetString("config-file"))

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if conf.HasLegacyKeys() {
				fmt.Fprintln(out, "legacy hostname/username/password keys are ignored, move them under devices")
			}

			devices, errs := config.Validate(conf)

			for _, err := range errs {
				fmt.Fprintf(out, "invalid: %s\n", err)
			}

			for _, device := range devices {
				action := "poll every " + fmt.Sprint(device.RefreshRate) + "s"

				if device.Delete {
					action = "remove"
				}

				fmt.Fprintf(out, "ok: %s (%s)\n", device.Hostname, action)
			}

			if len(conf.Devices) == 0 {
				fmt.Fprintln(out, "no devices configured")
			}

			if len(errs) > 0 {
				return fmt.Errorf("%w: %d problem(s) found", exception.ErrInvalidConfig, len(errs))
			}

			return nil
		},
	}

	return cmd
}
