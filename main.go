package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/produceitem/feetdle/internal/catalog"
	"github.com/produceitem/feetdle/internal/config"
	"github.com/produceitem/feetdle/internal/gamestate"
	"github.com/produceitem/feetdle/internal/httpserver"
	"github.com/produceitem/feetdle/internal/mailer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	conn := catalog.NewConnector(cfg.DBPath)
	defer conn.Close()
	store := catalog.NewStore(conn)

	mail := &mailer.SMTPSender{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
		To:   cfg.BugReportTo,
	}

	// Drop the fallback snapshot at the day boundary so a degraded catalog
	// read can never serve yesterday's list against today's answer.
	clock := gamestate.NewClock(cfg.Location, func(newDay string) {
		log.Info().Str("date", newDay).Msg("daily reset")
		store.ClearFallback()
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go clock.Run(ctx)

	srv := httpserver.New(cfg, store, mail)
	log.Info().Str("addr", cfg.Addr).Str("tz", cfg.Timezone).Msg("starting feetdle server")
	if err := srv.Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
