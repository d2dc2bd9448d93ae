package main

import (
	"context"
	"time"

	"lodge/config"
	"lodge/di"
	"lodge/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()

	if cfg.Hotel.VIP.RenewalSweepMinutes > 0 {
		go runRenewalSweep(app, time.Duration(cfg.Hotel.VIP.RenewalSweepMinutes)*time.Minute)
	}

	app.HTTP.Serve()
}

// runRenewalSweep periodically retires VIP memberships whose end date has
// passed. The sweep is idempotent, so overlapping runs across replicas are
// harmless.
func runRenewalSweep(app *di.App, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		retired, err := app.VIP.ProcessRenewals(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("VIP renewal sweep failed")

			continue
		}

		if retired > 0 {
			log.Info().Int("retired", retired).Msg("VIP renewal sweep completed")
		}
	}
}
