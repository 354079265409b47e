package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robgonnella/noip-sensor/internal/accessory"
	"github.com/robgonnella/noip-sensor/internal/api"
	app_info "github.com/robgonnella/noip-sensor/internal/app-info"
	"github.com/robgonnella/noip-sensor/internal/config"
	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/robgonnella/noip-sensor/internal/metrics"
	"github.com/robgonnella/noip-sensor/internal/noip"
	"github.com/robgonnella/noip-sensor/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runs the platform until interrupted
func run(cmd *cobra.Command, props *CommandProps) error {
	log := logger.New()

	conf, err := config.New(viper.GetString("config-file"))

	if err != nil {
		return err
	}

	if listen := viper.GetString("api-listen"); listen != "" {
		conf.API.Listen = listen
	}

	db, err := accessory.NewSqliteDatabase(viper.GetString("database-file"))

	if err != nil {
		return err
	}

	accessories := accessory.NewService(accessory.NewSqliteRepo(db))

	userAgent := app_info.UserAgent()

	clientOpts := []noip.Option{}

	if updateURL := viper.GetString("update-url"); updateURL != "" {
		clientOpts = append(clientOpts, noip.WithBaseURL(updateURL))
	}

	updater := noip.NewClient(userAgent, clientOpts...)
	resolver := noip.NewIPInfo(viper.GetString("ipinfo-url"), userAgent)
	m := metrics.New()

	plat := platform.New(
		*conf,
		props.Version,
		accessories,
		updater,
		resolver,
		platform.WithMetrics(m),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)

	defer stop()

	if err := plat.Start(ctx); err != nil {
		return err
	}

	var server *api.Server

	if conf.API.Listen != "" {
		apiOpts := []api.Option{api.WithEvents(accessories)}

		if conf.API.Pprof {
			apiOpts = append(apiOpts, api.WithPprof())
		}

		server = api.New(conf.API.Listen, plat, m.Registry(), apiOpts...)

		go func() {
			if err := server.Start(); err != nil {
				log.Error().Err(err).Msg("api server failed")
			}
		}()
	}

	<-ctx.Done()

	log.Info().Msg("shutting down")

	plat.Stop()

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to stop api server")
		}
	}

	return nil
}
