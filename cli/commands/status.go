package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/robgonnella/noip-sensor/internal/accessory"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// creates and returns the "status" command
func status() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Prints the last known state of every cached accessory",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := accessory.NewSqliteDatabase(viper.GetString("database-file"))

			if err != nil {
				return err
			}

			accessories, err := accessory.NewService(accessory.NewSqliteRepo(db)).GetAllAccessories()

			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Hostname", "Device", "Contact", "Last Token", "Last IP", "Last Polled", "Halted", "Last Error"})

			for _, acc := range accessories {
				table.Append([]string{
					acc.Hostname,
					strings.TrimSpace(acc.Manufacturer + " " + acc.Model),
					acc.ContactState.String(),
					acc.LastToken,
					acc.LastIP,
					formatTime(acc.LastPolled),
					halted(acc),
					acc.LastError,
				})
			}

			table.Render()

			return nil
		},
	}

	return cmd
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "never"
	}

	return t.Local().Format(time.RFC3339)
}

func halted(acc *accessory.Accessory) string {
	if !acc.Halted {
		return "no"
	}

	if acc.HaltedUntil != nil {
		return fmt.Sprintf("until %s", formatTime(acc.HaltedUntil))
	}

	return "yes"
}
