package commands

import (
	"fmt"

	app_info "github.com/robgonnella/noip-sensor/internal/app-info"
	"github.com/spf13/cobra"
)

func version(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s: %s\n%s\n",
				app_info.NAME,
				props.Version,
				app_info.UserAgent(),
			)
		},
	}

	return cmd
}
